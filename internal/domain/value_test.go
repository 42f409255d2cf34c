package domain

import "testing"

func TestValue(t *testing.T) {
	t.Run("concrete", func(t *testing.T) {
		v := Concrete(12.0)
		if !v.IsConcrete() || v.IsIndeterminate() || v.IsUnsupported() {
			t.Errorf("unexpected kind %s", v.Kind())
		}
		if v.Raw() != 12.0 {
			t.Errorf("expected 12, got %v", v.Raw())
		}
		if v.String() != "12" {
			t.Errorf("expected \"12\", got %q", v.String())
		}
	})

	t.Run("concrete nil is still concrete", func(t *testing.T) {
		if !Concrete(nil).IsConcrete() {
			t.Error("expected Concrete(nil) to be concrete")
		}
	})

	t.Run("sentinels", func(t *testing.T) {
		if !Indeterminate.IsIndeterminate() || Indeterminate.Raw() != nil {
			t.Errorf("bad indeterminate sentinel %v", Indeterminate)
		}
		if !Unsupported.IsUnsupported() {
			t.Errorf("bad unsupported sentinel %v", Unsupported)
		}
		if (Value{}) != Unsupported {
			t.Error("zero value must read as unsupported")
		}
		if Indeterminate.String() != "<indeterminate>" {
			t.Errorf("unexpected string %q", Indeterminate.String())
		}
	})
}

func TestValue_Font(t *testing.T) {
	inter := FontName{Family: "Inter", Style: "Bold"}

	tests := []struct {
		name  string
		value Value
		want  FontName
		ok    bool
	}{
		{"font value", Concrete(inter), inter, true},
		{"font pointer", Concrete(&inter), inter, true},
		{"nil pointer", Concrete((*FontName)(nil)), FontName{}, false},
		{"string", Concrete("Inter"), FontName{}, false},
		{"mixed", Indeterminate, FontName{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Font()
			if ok != tt.ok || got != tt.want {
				t.Errorf("Font() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
