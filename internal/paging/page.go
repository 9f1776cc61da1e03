package paging

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// PageSize is the number of keys per listing page.
	PageSize = 100
	// MessageBudget caps a rendered page; the delivery channel rejects
	// messages near 4096 characters, so truncation happens well before.
	MessageBudget = 3900
)

const (
	emptyDirectoryNotice = "No he encontrado materiales. Prueba /rescan."
	emptyPageNotice      = "(sin elementos en esta página)"
	othersBucketLabel    = "Otros"
)

var digitRunPattern = regexp.MustCompile(`\d+`)

// BuildPage renders one page of a key listing. Keys are sorted naturally,
// windowed to the requested page (clamped into range), and grouped under
// decade headers derived from the trailing number of each key's final
// segment. Output never exceeds MessageBudget characters.
func BuildPage(title string, keys []string, cueCounts map[string]int, page int) string {
	if len(keys) == 0 {
		return emptyDirectoryNotice
	}

	sorted := make([]string, len(keys))
	copy(sorted, keys)
	SortNatural(sorted)

	totalPages := (len(sorted) + PageSize - 1) / PageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	window := sorted[(page-1)*PageSize : min((page-1)*PageSize+PageSize, len(sorted))]

	var b strings.Builder
	fmt.Fprintf(&b, "%s (página %d/%d, %d materiales)\n", title, page, totalPages, len(sorted))
	headerLen := b.Len()

	currentBucket := ""
	haveBucket := false
	for _, key := range window {
		bucket := bucketLabel(key)
		var pending string
		if !haveBucket || bucket != currentBucket {
			pending = "\n" + bucket + "\n"
		}
		line := fmt.Sprintf("• %s (%d líneas)\n", key, cueCounts[key])
		if b.Len()+len(pending)+len(line) > MessageBudget {
			break
		}
		if pending != "" {
			b.WriteString(pending)
			currentBucket = bucket
			haveBucket = true
		}
		b.WriteString(line)
	}

	if b.Len() == headerLen {
		b.WriteString(emptyPageNotice)
	}
	return strings.TrimRight(b.String(), "\n")
}

// bucketLabel groups a key by the decade of the last number in its final
// path segment: 1–10, 11–20, and so on. Keys without digits fall into a
// shared "Otros" bucket.
func bucketLabel(key string) string {
	segment := key
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		segment = key[idx+1:]
	}
	runs := digitRunPattern.FindAllString(segment, -1)
	if len(runs) == 0 {
		return othersBucketLabel
	}
	n, err := strconv.Atoi(runs[len(runs)-1])
	if err != nil || n < 1 {
		return othersBucketLabel
	}
	start := (n-1)/10*10 + 1
	return fmt.Sprintf("%d–%d", start, start+9)
}
