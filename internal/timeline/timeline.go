// Package timeline merges a user's schedule with entries synthesized from
// supplements, the day's meal templates, and the selected training session
// into a single ordered day view.
package timeline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/andib0/onyx/internal/db"
)

// A supplement occupies a short fixed window starting at its intake time.
const supplementWindowMinutes = 15

// endOfDay sorts untimed entries after every timed one.
const endOfDay = 24 * 60

type Entry struct {
	Source   string `json:"source"`
	SourceID string `json:"sourceId"`
	Title    string `json:"title"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Readonly bool   `json:"readonly"`

	startMin int
}

// Inputs carries everything Compose needs; Program may be nil when the user
// has no training day selected.
type Inputs struct {
	Blocks      []*db.ScheduleBlock
	Supplements []*db.Supplement
	Meals       []*db.MealTemplate
	Program     *db.ProgramDay
}

// ToMinutes converts "HH:MM" to minutes after midnight. Missing or malformed
// components count as zero, matching how free-text times are tolerated
// elsewhere in the app.
func ToMinutes(value string) int {
	hh, mm, _ := strings.Cut(value, ":")
	hours, _ := strconv.Atoi(strings.TrimSpace(hh))
	minutes, _ := strconv.Atoi(strings.TrimSpace(mm))
	return hours*60 + minutes
}

func minutesToClock(min int) string {
	if min >= endOfDay {
		min = endOfDay - 1
	}
	h := min / 60
	m := min % 60
	return pad2(h) + ":" + pad2(m)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func isTrainingBlock(b *db.ScheduleBlock) bool {
	text := strings.ToLower(b.Tag + " " + b.Title)
	return strings.Contains(text, "train") || strings.Contains(text, "gym") ||
		strings.Contains(text, "workout") || strings.Contains(text, "lift")
}

func isMealBlock(b *db.ScheduleBlock) bool {
	text := strings.ToLower(b.Tag + " " + b.Title)
	for _, kw := range []string{"nutrition", "meal", "breakfast", "lunch", "dinner", "snack"} {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Compose builds the merged day view: the user's own blocks, one read-only
// entry per supplement at its intake window, one per meal template of the
// requested weekday, and the selected program day as a session entry.
// Untimed entries inherit the start of the first matching schedule block
// (meal entries from a meal block, the session from a training block) and
// otherwise sort to the end of the day. Duplicates by (source, source id)
// collapse to the first occurrence, and the result is ordered by start
// minute with ties kept in input order.
func Compose(in Inputs) []Entry {
	entries := make([]Entry, 0, len(in.Blocks)+len(in.Supplements)+len(in.Meals)+1)

	mealAnchor := -1
	trainingAnchor := -1
	for _, b := range in.Blocks {
		start := ToMinutes(b.Start)
		if mealAnchor < 0 && isMealBlock(b) {
			mealAnchor = start
		}
		if trainingAnchor < 0 && isTrainingBlock(b) {
			trainingAnchor = start
		}
		entries = append(entries, Entry{
			Source:   b.Source,
			SourceID: b.ID,
			Title:    b.Title,
			Start:    b.Start,
			End:      b.End,
			Tag:      b.Tag,
			Readonly: b.Readonly,
			startMin: start,
		})
	}

	for _, s := range in.Supplements {
		at := ToMinutes(s.TimeAt)
		end := at + supplementWindowMinutes
		if end > endOfDay {
			end = endOfDay
		}
		entries = append(entries, Entry{
			Source:   "supplement",
			SourceID: s.ID,
			Title:    s.Item,
			Start:    s.TimeAt,
			End:      minutesToClock(end),
			Tag:      "supplement",
			Readonly: true,
			startMin: at,
		})
	}

	for _, m := range in.Meals {
		e := Entry{
			Source:   "nutrition",
			SourceID: m.ID,
			Title:    m.Name,
			Tag:      "nutrition",
			Readonly: true,
			startMin: endOfDay,
		}
		if mealAnchor >= 0 {
			e.startMin = mealAnchor
			e.Start = minutesToClock(mealAnchor)
		}
		entries = append(entries, e)
	}

	if in.Program != nil {
		e := Entry{
			Source:   "program",
			SourceID: in.Program.ID,
			Title:    in.Program.Name,
			Tag:      "training",
			Readonly: true,
			startMin: endOfDay,
		}
		if trainingAnchor >= 0 {
			e.startMin = trainingAnchor
			e.Start = minutesToClock(trainingAnchor)
		}
		entries = append(entries, e)
	}

	seen := make(map[string]bool, len(entries))
	deduped := entries[:0]
	for _, e := range entries {
		key := e.Source + "\x00" + e.SourceID
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, e)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].startMin < deduped[j].startMin
	})
	return deduped
}

// CurrentNext picks the active entry and its successor from a composed list.
// When now falls inside an entry's window that entry is current; otherwise
// the first entry still ahead is; otherwise the day's last entry.
func CurrentNext(entries []Entry, nowMinutes int) (current, next *Entry) {
	if len(entries) == 0 {
		return nil, nil
	}
	idx := -1
	for i := range entries {
		start := entries[i].startMin
		end := ToMinutes(entries[i].End)
		if nowMinutes >= start && nowMinutes < end {
			idx = i
			break
		}
		if nowMinutes < start {
			idx = i
			break
		}
	}
	if idx == -1 {
		idx = len(entries) - 1
	}
	current = &entries[idx]
	if idx+1 < len(entries) {
		next = &entries[idx+1]
	}
	return current, next
}
