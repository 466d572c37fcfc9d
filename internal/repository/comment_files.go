package repository

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Rohithsilent/P-o-P/internal/model"
)

const (
	csvExt = ".csv"
	bom    = "\uFEFF"
)

var commentHeader = []string{"Username", "Comment", "Likes", "Published At", "Reply Count"}

// CommentFiles keeps at most one comment snapshot per directory, named <videoID>.csv.
type CommentFiles struct {
	Dir string
}

func NewCommentFiles(dir string) *CommentFiles {
	if dir == "" {
		dir = "."
	}
	return &CommentFiles{Dir: dir}
}

func (f *CommentFiles) Path(videoID string) string {
	return filepath.Join(f.Dir, videoID+csvExt)
}

// Save writes comments to <videoID>.csv, replacing any previous file atomically.
func (f *CommentFiles) Save(videoID string, comments []model.Comment) (string, error) {
	if videoID == "" {
		return "", errors.New("save comments: empty video id")
	}
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return "", fmt.Errorf("save comments: %w", err)
	}

	tmp, err := os.CreateTemp(f.Dir, ".tmp_comments_*")
	if err != nil {
		return "", fmt.Errorf("save comments: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := writeComments(tmp, comments); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("save comments: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("save comments: %w", err)
	}

	path := f.Path(videoID)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("save comments: %w", err)
	}
	return path, nil
}

func writeComments(w io.Writer, comments []model.Comment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(commentHeader); err != nil {
		return err
	}
	for _, c := range comments {
		row := []string{
			c.Username,
			c.Text,
			strconv.FormatInt(c.Likes, 10),
			c.PublishedAt,
			strconv.FormatInt(c.ReplyCount, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Load reads a comment file. A leading byte-order mark is ignored and
// unparsable counts read as 0.
func (f *CommentFiles) Load(path string) ([]model.Comment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	defer file.Close()

	comments, err := readComments(file)
	if err != nil {
		return nil, fmt.Errorf("load comments %s: %w", path, err)
	}
	return comments, nil
}

func (f *CommentFiles) LoadVideo(videoID string) ([]model.Comment, error) {
	return f.Load(f.Path(videoID))
}

func readComments(r io.Reader) ([]model.Comment, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && string(head) == bom {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols["Comment"]; !ok {
		return nil, errors.New("missing Comment column")
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var comments []model.Comment
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		comments = append(comments, model.Comment{
			Username:    field(row, "Username"),
			Text:        field(row, "Comment"),
			Likes:       parseCount(field(row, "Likes")),
			PublishedAt: field(row, "Published At"),
			ReplyCount:  parseCount(field(row, "Reply Count")),
		})
	}
	return comments, nil
}

func parseCount(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// PruneExcept deletes every *.csv in the directory other than the one for videoID.
func (f *CommentFiles) PruneExcept(videoID string) ([]string, error) {
	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		return nil, fmt.Errorf("prune comments: %w", err)
	}

	keep := videoID + csvExt
	var deleted []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, csvExt) || name == keep {
			continue
		}
		if err := os.Remove(filepath.Join(f.Dir, name)); err != nil {
			return deleted, fmt.Errorf("prune comments: %w", err)
		}
		deleted = append(deleted, name)
	}
	return deleted, nil
}
