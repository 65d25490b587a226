package game

import "github.com/playperu/wordballoon/internal/vocab"

// LockedGlyph replaces the glyph of items not yet drawn.
const LockedGlyph = "🔒"

type CollectionEntry struct {
	ID          string       `json:"id"`
	Word        string       `json:"word"`
	Translation string       `json:"translation"`
	Rarity      vocab.Rarity `json:"rarity"`
	Glyph       string       `json:"glyph"`
	Unlocked    bool         `json:"unlocked"`
}

type CollectionView struct {
	Entries  []CollectionEntry `json:"entries"`
	Unlocked int               `json:"unlocked"`
	Total    int               `json:"total"`
}

// Collection lists the whole catalog, rarest first, marking what the player owns.
func (c *Controller) Collection() CollectionView {
	c.mu.Lock()
	owned := c.profile.Clone()
	c.mu.Unlock()

	items := c.catalog.Sorted()
	v := CollectionView{
		Entries: make([]CollectionEntry, 0, len(items)),
		Total:   len(items),
	}
	for _, it := range items {
		e := CollectionEntry{
			ID:          it.ID,
			Word:        it.Word,
			Translation: it.Translation,
			Rarity:      it.Rarity,
			Glyph:       LockedGlyph,
		}
		if owned.Has(it.ID) {
			e.Unlocked = true
			e.Glyph = it.Glyph
			v.Unlocked++
		}
		v.Entries = append(v.Entries, e)
	}
	return v
}
