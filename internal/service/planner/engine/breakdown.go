package engine

import (
	"fmt"

	"github.com/heartmarshall/hifz-planner/internal/domain"
)

// BuildPageBreakdown cuts the pages of one surah out of the global page
// markers. markers holds one entry per mushaf page, naming the surah and ayah
// the page begins with, in ascending order.
//
// The surah's pages are the markers from the first one with Surah ==
// contentID up to (not including) the first one with a greater surah. A
// surah with no marker of its own yields an empty slice.
//
// An EndAyah of 0 means "through the last ayah of the surah"; see
// ResolveOpenEnds.
func BuildPageBreakdown(contentID int, markers []domain.PageMarker) ([]domain.Page, error) {
	if contentID < domain.MinSurah || contentID > domain.MaxSurah {
		return nil, domain.NewValidationError("content_id",
			fmt.Sprintf("must be between %d and %d", domain.MinSurah, domain.MaxSurah))
	}
	if err := checkAscending(markers); err != nil {
		return nil, err
	}

	first, next := -1, len(markers)
	for i, m := range markers {
		if first < 0 {
			if m.Surah == contentID {
				first = i
			}
			continue
		}
		if m.Surah > contentID {
			next = i
			break
		}
	}
	if first < 0 {
		return []domain.Page{}, nil
	}

	sentinel := domain.PageMarker{Surah: contentID + 1, Ayah: 1}
	pages := make([]domain.Page, 0, next-first)
	for i := first; i < next; i++ {
		end := sentinel
		if i+1 < next {
			end = markers[i+1]
		}
		pages = append(pages, domain.Page{
			PageNumber: i - first + 1,
			GlobalPage: i + 1,
			StartSurah: markers[i].Surah,
			StartAyah:  markers[i].Ayah,
			EndSurah:   contentID,
			EndAyah:    max(end.Ayah-1, 0),
			Unlocked:   i == first,
		})
	}
	return pages, nil
}

// ResolveOpenEnds replaces an open EndAyah (0) with the surah's ayah count.
// It is a no-op when ayahCount is unknown.
func ResolveOpenEnds(pages []domain.Page, ayahCount int) {
	if ayahCount <= 0 {
		return
	}
	for i := range pages {
		if pages[i].EndAyah == 0 {
			pages[i].EndAyah = ayahCount
		}
	}
}

func checkAscending(markers []domain.PageMarker) error {
	for i, m := range markers {
		if m.Surah < domain.MinSurah || m.Surah > domain.MaxSurah || m.Ayah < 1 {
			return fmt.Errorf("marker %d (%d:%d): %w", i, m.Surah, m.Ayah, domain.ErrMalformedMetadata)
		}
		if i == 0 {
			continue
		}
		prev := markers[i-1]
		if m.Surah < prev.Surah || (m.Surah == prev.Surah && m.Ayah <= prev.Ayah) {
			return fmt.Errorf("marker %d (%d:%d) not after %d:%d: %w",
				i, m.Surah, m.Ayah, prev.Surah, prev.Ayah, domain.ErrMalformedMetadata)
		}
	}
	return nil
}
