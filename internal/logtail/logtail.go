package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields nil, nil.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Attr is one key/value pair of a log entry, value already rendered.
type Attr struct {
	Key   string
	Value string
}

// Entry is a decoded slog JSON record.
type Entry struct {
	Time  time.Time
	Level string
	Msg   string
	Attrs []Attr
}

// Parse decodes a line written by slog's JSON handler. Lines that are not
// JSON objects report false.
func Parse(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Entry{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Entry{}, false
	}

	var e Entry
	if v, ok := raw["time"].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			e.Time = ts
		}
	}
	e.Level, _ = raw["level"].(string)
	e.Msg, _ = raw["msg"].(string)
	delete(raw, "time")
	delete(raw, "level")
	delete(raw, "msg")

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.Attrs = append(e.Attrs, Attr{Key: k, Value: renderValue(raw[k])})
	}
	return e, true
}

func renderValue(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" || strings.ContainsAny(val, " =\"") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case nil:
		return "null"
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	default:
		return fmt.Sprint(val)
	}
}

var (
	timeColor  = color.New(color.FgHiBlack)
	keyColor   = color.New(color.FgCyan)
	levelColor = map[string]*color.Color{
		"DEBUG": color.New(color.FgBlue, color.Bold),
		"INFO":  color.New(color.FgGreen, color.Bold),
		"WARN":  color.New(color.FgYellow, color.Bold),
		"ERROR": color.New(color.FgRed, color.Bold),
	}
)

// Format renders an entry as "2006-01-02 15:04:05 LEVEL msg key=value".
// Colour follows fatih/color's global NoColor switch.
func Format(e Entry) string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(timeColor.Sprint(e.Time.Local().Format(time.DateTime)))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		level := strings.ToUpper(e.Level)
		if c, ok := levelColor[level]; ok {
			b.WriteString(c.Sprint(level))
		} else {
			b.WriteString(level)
		}
		b.WriteByte(' ')
	}
	b.WriteString(e.Msg)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(keyColor.Sprint(a.Key))
		b.WriteByte('=')
		b.WriteString(a.Value)
	}
	return b.String()
}

// FormatLines parses and formats each line, passing non-JSON lines through.
func FormatLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if e, ok := Parse(line); ok {
			out[i] = Format(e)
			continue
		}
		out[i] = line
	}
	return out
}
