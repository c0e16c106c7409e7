package dedup

import (
	"testing"

	"briefbot/types"
)

func medArticle(id, title, journal, abstract string) *types.MedArticle {
	return &types.MedArticle{ID: id, Title: title, Journal: journal, Abstract: abstract}
}

func TestAreDuplicatesSameJournal(t *testing.T) {
	d := NewDeduper(Config{})

	tests := []struct {
		name string
		a, b *types.MedArticle
		want bool
	}{
		{
			"identical normalized titles",
			medArticle("1", "Haemorrhage risk after planned caesarean", "The Lancet", ""),
			medArticle("2", "Hemorrhage risk after planned cesarean!", "The Lancet", ""),
			true,
		},
		{
			"near-identical titles",
			medArticle("1", "Randomised trial of early mobilisation after hip surgery", "BMJ", ""),
			medArticle("2", "Randomized trial of early mobilisation after hip surgery.", "BMJ", ""),
			true,
		},
		{
			"unrelated titles",
			medArticle("1", "Statin therapy and cardiovascular outcomes", "BMJ", ""),
			medArticle("2", "Paediatric asthma inhaler adherence study", "BMJ", ""),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.AreDuplicates(tt.a, tt.b); got != tt.want {
				t.Errorf("AreDuplicates = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAreDuplicatesCrossJournalNeverMerge(t *testing.T) {
	d := NewDeduper(Config{})
	a := medArticle("1", "Hemorrhage risk rises after surgery", "The Lancet", "")
	b := medArticle("2", "Hemorrhage risk rises after surgery", "NEJM", "")

	if d.AreDuplicates(a, b) {
		t.Error("identical titles in different journals must never merge")
	}
}

func TestFindDuplicateGroups(t *testing.T) {
	d := NewDeduper(Config{})
	articles := []*types.MedArticle{
		medArticle("a1", "Haemorrhage risk after planned caesarean", "The Lancet", ""),
		medArticle("a2", "Hemorrhage risk after planned cesarean", "The Lancet", ""),
		medArticle("b1", "Statin therapy and cardiovascular outcomes", "BMJ", ""),
		medArticle("c1", "Hemorrhage risk after planned cesarean", "NEJM", ""),
	}

	groups := d.FindDuplicateGroups(articles)

	if len(groups) != 1 {
		t.Fatalf("expected exactly 1 duplicate group, got %d: %v", len(groups), groups)
	}

	key := GroupKey(articles[0])
	ids, ok := groups[key]
	if !ok {
		t.Fatalf("group missing under representative key %s: %v", key, groups)
	}
	if len(ids) != 2 || ids[0] != "a1" || ids[1] != "a2" {
		t.Errorf("group members = %v, want [a1 a2] in input order", ids)
	}
}

func TestAreDuplicatesEmptyTitlesNeverMerge(t *testing.T) {
	d := NewDeduper(Config{})

	a := medArticle("1", "", "BMJ", "")
	b := medArticle("2", "", "BMJ", "")
	if d.AreDuplicates(a, b) {
		t.Error("two untitled announcements must not merge on vacuous similarity")
	}

	c := medArticle("3", "Statin therapy and cardiovascular outcomes", "BMJ", "")
	if d.AreDuplicates(a, c) {
		t.Error("an untitled announcement must not merge with a titled one")
	}

	groups := d.FindDuplicateGroups([]*types.MedArticle{a, b})
	if len(groups) != 0 {
		t.Errorf("untitled announcements must stay ungrouped, got %v", groups)
	}
}

func TestFindDuplicateGroupsOmitsSingletons(t *testing.T) {
	d := NewDeduper(Config{})
	groups := d.FindDuplicateGroups([]*types.MedArticle{
		medArticle("solo", "A one-off case report", "JAMA", ""),
	})
	if len(groups) != 0 {
		t.Errorf("singleton must not be reported as a duplicate group, got %v", groups)
	}
}

func TestGroupKeyStability(t *testing.T) {
	a := medArticle("1", "Haemorrhage Risk, After Planned Caesarean", "The Lancet", "")
	b := medArticle("2", "hemorrhage risk after planned cesarean", "the lancet!", "")
	if GroupKey(a) != GroupKey(b) {
		t.Error("spelling/punctuation variants of the same article must share a group key")
	}

	c := medArticle("3", "hemorrhage risk after planned cesarean", "NEJM", "")
	if GroupKey(a) == GroupKey(c) {
		t.Error("the same title in a different journal must hash to a different key")
	}

	want := types.GenerateID("hemorrhage risk after planned cesarean|the lancet")
	if got := GroupKey(a); got != want {
		t.Errorf("GroupKey = %s, want the item-ID derivation %s", got, want)
	}
}

func TestCollapseKeepsLongestAbstract(t *testing.T) {
	d := NewDeduper(Config{})
	articles := []*types.MedArticle{
		medArticle("a1", "Hemorrhage risk after planned cesarean", "The Lancet", "short"),
		medArticle("a2", "Hemorrhage risk after planned cesarean", "The Lancet", "a considerably longer abstract"),
		medArticle("b1", "Statin therapy and cardiovascular outcomes", "BMJ", ""),
	}

	survivors := d.Collapse(articles)
	if len(survivors) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(survivors))
	}
	if survivors[0].ID != "a2" {
		t.Errorf("survivor = %s, want the member with the longest abstract (a2)", survivors[0].ID)
	}
	if survivors[1].ID != "b1" {
		t.Errorf("second survivor = %s, want b1", survivors[1].ID)
	}
}

func TestAreTitlesSimilarThreshold(t *testing.T) {
	if !AreTitlesSimilar("Hemorrhage risk rises after surgery", "Hemorrhage risk rises after surgery", 0.85) {
		t.Error("identical titles must be similar at any threshold")
	}
	if AreTitlesSimilar("Hemorrhage risk rises after surgery", "Paediatric asthma inhaler adherence", 0.85) {
		t.Error("unrelated titles must not clear a 0.85 threshold")
	}
}
