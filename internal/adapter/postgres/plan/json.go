package plan

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/hifz-planner/internal/domain"
)

type pageJSON struct {
	PageNumber int  `json:"page_number"`
	GlobalPage int  `json:"global_page"`
	StartSurah int  `json:"start_surah"`
	StartAyah  int  `json:"start_ayah"`
	EndSurah   int  `json:"end_surah"`
	EndAyah    int  `json:"end_ayah"`
	Completed  bool `json:"completed"`
	Revised    bool `json:"revised"`
	Unlocked   bool `json:"unlocked"`
}

type entryJSON struct {
	PageNumber    int       `json:"page_number"`
	DateCompleted time.Time `json:"date_completed"`
}

type progressJSON struct {
	Memorized []entryJSON `json:"memorized"`
	Revised   []entryJSON `json:"revised"`
}

type detailsJSON struct {
	Number         int    `json:"number"`
	Name           string `json:"name"`
	EnglishName    string `json:"english_name"`
	TranslatedName string `json:"translated_name"`
	AyahCount      int    `json:"ayah_count"`
	RevelationType string `json:"revelation_type"`
}

func marshalPlan(p *domain.Plan) (breakdown, progress, details []byte, err error) {
	pages := make([]pageJSON, len(p.PageBreakdown))
	for i, pg := range p.PageBreakdown {
		pages[i] = pageJSON(pg)
	}
	if breakdown, err = json.Marshal(pages); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal page breakdown: %w", err)
	}

	prog := progressJSON{
		Memorized: entriesToJSON(p.Progress.Memorized),
		Revised:   entriesToJSON(p.Progress.Revised),
	}
	if progress, err = json.Marshal(prog); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal progress: %w", err)
	}

	if details, err = json.Marshal(detailsJSON(p.ContentDetails)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal content details: %w", err)
	}
	return breakdown, progress, details, nil
}

func unmarshalPlan(p *domain.Plan, breakdown, progress, details []byte) error {
	var pages []pageJSON
	if err := json.Unmarshal(breakdown, &pages); err != nil {
		return fmt.Errorf("unmarshal page breakdown: %w", err)
	}
	p.PageBreakdown = make([]domain.Page, len(pages))
	for i, pg := range pages {
		p.PageBreakdown[i] = domain.Page(pg)
	}

	if len(progress) > 0 {
		var prog progressJSON
		if err := json.Unmarshal(progress, &prog); err != nil {
			return fmt.Errorf("unmarshal progress: %w", err)
		}
		p.Progress = domain.Progress{
			Memorized: entriesFromJSON(prog.Memorized),
			Revised:   entriesFromJSON(prog.Revised),
		}
	}

	if len(details) > 0 {
		var d detailsJSON
		if err := json.Unmarshal(details, &d); err != nil {
			return fmt.Errorf("unmarshal content details: %w", err)
		}
		p.ContentDetails = domain.ContentDetails(d)
	}
	return nil
}

// entriesToJSON never returns nil so empty logs are stored as [].
func entriesToJSON(entries []domain.ProgressEntry) []entryJSON {
	out := make([]entryJSON, len(entries))
	for i, e := range entries {
		out[i] = entryJSON{PageNumber: e.PageNumber, DateCompleted: e.DateCompleted.UTC()}
	}
	return out
}

func entriesFromJSON(entries []entryJSON) []domain.ProgressEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]domain.ProgressEntry, len(entries))
	for i, e := range entries {
		out[i] = domain.ProgressEntry(e)
	}
	return out
}
