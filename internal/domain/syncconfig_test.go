package domain

import (
	"reflect"
	"testing"
)

func TestDefaultSyncConfig(t *testing.T) {
	cfg := DefaultSyncConfig()
	if !reflect.DeepEqual(cfg.EnabledGroups(), AllGroups) {
		t.Errorf("expected every group enabled, got %v", cfg.EnabledGroups())
	}
	if cfg.String() != "name,fills,strokes,effects,corners,text,flow,dimension,gap,padding" {
		t.Errorf("unexpected string %q", cfg.String())
	}
}

func TestOnlyGroups(t *testing.T) {
	cfg := OnlyGroups(GroupPadding, GroupName)

	if !reflect.DeepEqual(cfg.EnabledGroups(), []SyncGroup{GroupName, GroupPadding}) {
		t.Errorf("expected groups in application order, got %v", cfg.EnabledGroups())
	}
	if cfg.Enabled(GroupFills) {
		t.Error("fills must be disabled")
	}

	clone := cfg.Clone()
	clone[GroupFills] = true
	if cfg.Enabled(GroupFills) {
		t.Error("Clone must not share state")
	}
}

func TestParseGroupList(t *testing.T) {
	tests := []struct {
		input   string
		want    []SyncGroup
		wantErr bool
	}{
		{"", nil, false},
		{"fills", []SyncGroup{GroupFills}, false},
		{"Fills, text ,padding", []SyncGroup{GroupFills, GroupText, GroupPadding}, false},
		{"fills,,gap", []SyncGroup{GroupFills, GroupGap}, false},
		{"colors", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGroupList(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGroupList(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseGroupList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPropertyGroups(t *testing.T) {
	t.Run("font belongs to text", func(t *testing.T) {
		g, ok := PropertyGroup(PropFontName)
		if !ok || g != GroupText {
			t.Errorf("expected text group, got %s", g)
		}
		if !IsTextProperty(PropLetterSpacing) || IsTextProperty(PropFills) {
			t.Error("IsTextProperty mismatch")
		}
	})

	t.Run("every property is listed once", func(t *testing.T) {
		seen := make(map[Property]bool)
		for _, p := range AllProperties() {
			if seen[p] {
				t.Errorf("duplicate property %s", p)
			}
			seen[p] = true
			if _, ok := PropertyGroup(p); !ok {
				t.Errorf("property %s has no group", p)
			}
		}
	})

	t.Run("name group has no plain properties", func(t *testing.T) {
		if len(GroupProperties(GroupName)) != 0 {
			t.Errorf("unexpected properties %v", GroupProperties(GroupName))
		}
	})
}
