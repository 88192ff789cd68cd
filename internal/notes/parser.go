// Package notes parses daily markdown notes: YAML frontmatter, checkbox
// tasks, time blocks, and inline #tags. Notes are a capture surface; tasks
// extracted here only become real task records through an explicit capture
// step.
package notes

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/7D-codes/lifeos-core/internal/types"
)

// BlockType classifies a scheduled time block.
type BlockType string

const (
	BlockDeepWork BlockType = "deep_work"
	BlockMeeting  BlockType = "meeting"
	BlockAdmin    BlockType = "admin"
	BlockBreak    BlockType = "break"
	BlockPersonal BlockType = "personal"
)

// TimeBlock is one scheduled span extracted from a note, e.g.
// "09:00-10:30 Planning sync".
type TimeBlock struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start string    `json:"start"` // HH:MM
	End   string    `json:"end"`   // HH:MM
	Type  BlockType `json:"type"`
}

// Note is one parsed markdown document.
type Note struct {
	Path        string         `json:"path"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
	Content     string         `json:"content"`
	Tasks       []types.Task   `json:"tasks"`
	Blocks      []TimeBlock    `json:"blocks"`
	Tags        []string       `json:"tags"`
	Modified    time.Time      `json:"modified"`
}

var (
	checkboxRe = regexp.MustCompile(`^- \[([ x])\] (.+)$`)
	priorityRe = regexp.MustCompile(`#(urgent|high|medium|low)\b`)
	projectRe  = regexp.MustCompile(`#project/([\w-]+)`)
	dueRe      = regexp.MustCompile(`#due/(\d{4}-\d{2}-\d{2})`)
	tagRe      = regexp.MustCompile(`#([\w/-]+)`)
	blockRe    = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})\s+(.+)`)
)

// Parse reads and parses one markdown file.
func Parse(path string) (*Note, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	frontmatter, content := splitFrontmatter(string(raw))
	return &Note{
		Path:        path,
		Frontmatter: frontmatter,
		Content:     content,
		Tasks:       extractTasks(content, path),
		Blocks:      extractBlocks(content),
		Tags:        extractTags(content),
		Modified:    info.ModTime(),
	}, nil
}

// splitFrontmatter separates a leading "---" YAML block from the body. A
// missing or malformed block yields a nil map and the full text as body.
func splitFrontmatter(raw string) (map[string]any, string) {
	if !strings.HasPrefix(raw, "---\n") && !strings.HasPrefix(raw, "---\r\n") {
		return nil, raw
	}
	rest := raw[strings.Index(raw, "\n")+1:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, raw
	}

	var fm map[string]any
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return nil, raw
	}

	body := rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\r")
	body = strings.TrimPrefix(body, "\n")
	return fm, body
}

// extractTasks pulls checkbox lines out of the body. Ids are derived from the
// filename and line number so re-parsing the same note is stable.
func extractTasks(content, path string) []types.Task {
	var tasks []types.Task
	now := time.Now().UTC()

	for i, line := range strings.Split(content, "\n") {
		m := checkboxRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[2])

		status := types.StatusTodo
		if m[1] == "x" {
			status = types.StatusDone
		}

		priority := types.PriorityMedium
		if pm := priorityRe.FindStringSubmatch(title); pm != nil {
			priority = types.Priority(pm[1])
		}

		var projectRef string
		if pm := projectRe.FindStringSubmatch(title); pm != nil {
			projectRef = types.ProjectRefFor(pm[1])
		}

		var dueDate string
		if dm := dueRe.FindStringSubmatch(title); dm != nil {
			dueDate = dm[1]
		}

		tasks = append(tasks, types.Task{
			ID:         filepath.Base(path) + "-" + strconv.Itoa(i),
			Title:      strings.TrimSpace(tagRe.ReplaceAllString(title, "")),
			Status:     status,
			Priority:   priority,
			DueDate:    dueDate,
			ProjectRef: projectRef,
			Tags:       extractTags(title),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return tasks
}

// extractBlocks pulls "HH:MM-HH:MM Title" spans out of the body.
func extractBlocks(content string) []TimeBlock {
	var blocks []TimeBlock
	for i, m := range blockRe.FindAllStringSubmatch(content, -1) {
		title := strings.TrimSpace(m[5])
		blocks = append(blocks, TimeBlock{
			ID:    "block-" + strconv.Itoa(i),
			Title: title,
			Start: pad(m[1]) + ":" + m[2],
			End:   pad(m[3]) + ":" + m[4],
			Type:  inferBlockType(title),
		})
	}
	return blocks
}

func pad(h string) string {
	if len(h) == 1 {
		return "0" + h
	}
	return h
}

// extractTags returns the deduplicated #tags in order of first appearance.
func extractTags(content string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, m := range tagRe.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			tags = append(tags, m[1])
		}
	}
	return tags
}

func inferBlockType(title string) BlockType {
	lower := strings.ToLower(title)
	switch {
	case containsAny(lower, "meeting", "call", "sync"):
		return BlockMeeting
	case containsAny(lower, "focus", "deep", "work"):
		return BlockDeepWork
	case containsAny(lower, "break", "lunch"):
		return BlockBreak
	case containsAny(lower, "admin", "email"):
		return BlockAdmin
	}
	return BlockPersonal
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// DailyNotes parses every markdown file in the daily-notes directory, sorted
// by filename (which is the date). A missing directory is an empty result.
func DailyNotes(dailyDir string) []*Note {
	entries, err := os.ReadDir(dailyDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var parsed []*Note
	for _, name := range names {
		note, err := Parse(filepath.Join(dailyDir, name))
		if err != nil {
			continue
		}
		parsed = append(parsed, note)
	}
	return parsed
}

// NoteForDate parses the note for one date. The second return is false when
// the note does not exist.
func NoteForDate(dailyDir string, date time.Time) (*Note, bool) {
	note, err := Parse(filepath.Join(dailyDir, types.DateOf(date)+".md"))
	if err != nil {
		return nil, false
	}
	return note, true
}
