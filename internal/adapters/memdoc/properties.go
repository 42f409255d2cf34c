package memdoc

import "linksync/internal/domain"

// Property surface per node type.

var (
	visualProps = []domain.Property{
		domain.PropFills, domain.PropOpacity, domain.PropBlendMode, domain.PropVisible,
		domain.PropStrokes, domain.PropStrokeWeight, domain.PropStrokeAlign,
		domain.PropStrokeCap, domain.PropStrokeJoin, domain.PropDashPattern, domain.PropStrokeMiterLimit,
		domain.PropEffects,
	}
	sideStrokeProps = []domain.Property{
		domain.PropStrokeTopWeight, domain.PropStrokeBottomWeight,
		domain.PropStrokeLeftWeight, domain.PropStrokeRightWeight,
	}
	cornerProps = domain.GroupProperties(domain.GroupCorners)
	layoutProps = concat(
		domain.GroupProperties(domain.GroupFlow),
		domain.GroupProperties(domain.GroupDimension),
		domain.GroupProperties(domain.GroupGap),
		domain.GroupProperties(domain.GroupPadding),
	)
	textProps  = append([]domain.Property{domain.PropFontName}, domain.GroupProperties(domain.GroupText)...)
	groupProps = []domain.Property{domain.PropOpacity, domain.PropBlendMode, domain.PropVisible, domain.PropEffects}
)

var supported = map[domain.NodeType]map[domain.Property]bool{
	domain.NodeTypePage:         set(),
	domain.NodeTypeGroup:        set(groupProps),
	domain.NodeTypeFrame:        set(visualProps, sideStrokeProps, cornerProps, layoutProps),
	domain.NodeTypeComponent:    set(visualProps, sideStrokeProps, cornerProps, layoutProps),
	domain.NodeTypeComponentSet: set(visualProps, sideStrokeProps, cornerProps, layoutProps),
	domain.NodeTypeInstance:     set(visualProps, sideStrokeProps, cornerProps, layoutProps),
	domain.NodeTypeRectangle:    set(visualProps, sideStrokeProps, cornerProps),
	domain.NodeTypeEllipse:      set(visualProps),
	domain.NodeTypeVector:       set(visualProps),
	domain.NodeTypeText:         set(visualProps, textProps),
}

// Supports reports whether nodes of type t expose prop
func Supports(t domain.NodeType, prop domain.Property) bool {
	return supported[t][prop]
}

// defaults are the values read from a supported property that was never set
var defaults = map[domain.Property]any{
	domain.PropFills:     []any{},
	domain.PropOpacity:   1.0,
	domain.PropBlendMode: "PASS_THROUGH",
	domain.PropVisible:   true,

	domain.PropStrokes:            []any{},
	domain.PropStrokeWeight:       1.0,
	domain.PropStrokeAlign:        "INSIDE",
	domain.PropStrokeCap:          "NONE",
	domain.PropStrokeJoin:         "MITER",
	domain.PropDashPattern:        []any{},
	domain.PropStrokeMiterLimit:   4.0,
	domain.PropStrokeTopWeight:    1.0,
	domain.PropStrokeBottomWeight: 1.0,
	domain.PropStrokeLeftWeight:   1.0,
	domain.PropStrokeRightWeight:  1.0,

	domain.PropEffects: []any{},

	domain.PropCornerRadius:      0.0,
	domain.PropCornerSmoothing:   0.0,
	domain.PropTopLeftRadius:     0.0,
	domain.PropTopRightRadius:    0.0,
	domain.PropBottomLeftRadius:  0.0,
	domain.PropBottomRightRadius: 0.0,

	domain.PropFontName:            domain.FontName{Family: "Inter", Style: "Regular"},
	domain.PropFontSize:            12.0,
	domain.PropLetterSpacing:       map[string]any{"unit": "PIXELS", "value": 0.0},
	domain.PropLineHeight:          map[string]any{"unit": "AUTO"},
	domain.PropParagraphIndent:     0.0,
	domain.PropParagraphSpacing:    0.0,
	domain.PropTextCase:            "ORIGINAL",
	domain.PropTextDecoration:      "NONE",
	domain.PropTextAlignHorizontal: "LEFT",
	domain.PropTextAlignVertical:   "TOP",

	domain.PropLayoutMode:              "NONE",
	domain.PropPrimaryAxisAlignItems:   "MIN",
	domain.PropCounterAxisAlignItems:   "MIN",
	domain.PropItemReverseZIndex:       false,
	domain.PropStrokesIncludedInLayout: false,
	domain.PropLayoutWrap:              "NO_WRAP",

	domain.PropPrimaryAxisSizingMode:  "AUTO",
	domain.PropCounterAxisSizingMode:  "AUTO",
	domain.PropLayoutSizingHorizontal: "FIXED",
	domain.PropLayoutSizingVertical:   "FIXED",

	domain.PropItemSpacing:        0.0,
	domain.PropCounterAxisSpacing: 0.0,

	domain.PropPaddingLeft:   0.0,
	domain.PropPaddingRight:  0.0,
	domain.PropPaddingTop:    0.0,
	domain.PropPaddingBottom: 0.0,
}

// valueKind classifies raw values for assignment compatibility
type valueKind int

const (
	kindNil valueKind = iota
	kindNumber
	kindString
	kindBool
	kindList
	kindMap
	kindFont
	kindOther
)

func kindOf(v any) valueKind {
	switch v.(type) {
	case nil:
		return kindNil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return kindNumber
	case string:
		return kindString
	case bool:
		return kindBool
	case []any, []float64, []string:
		return kindList
	case map[string]any:
		return kindMap
	case domain.FontName, *domain.FontName:
		return kindFont
	default:
		return kindOther
	}
}

func compatible(current, next any) bool {
	a, b := kindOf(current), kindOf(next)
	return a == kindNil || b == kindNil || a == b
}

// deepCopy copies the containers produced by YAML/JSON decoding so that
// derived nodes never alias their source's values
func deepCopy(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	case []float64:
		return append([]float64(nil), t...)
	case []string:
		return append([]string(nil), t...)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = deepCopy(e)
		}
		return out
	case *domain.FontName:
		if t == nil {
			return nil
		}
		return *t
	default:
		return v
	}
}

func copyValue(v domain.Value) domain.Value {
	if !v.IsConcrete() {
		return v
	}
	return domain.Concrete(deepCopy(v.Raw()))
}

func set(groups ...[]domain.Property) map[domain.Property]bool {
	out := make(map[domain.Property]bool)
	for _, g := range groups {
		for _, p := range g {
			out[p] = true
		}
	}
	return out
}

func concat(groups ...[]domain.Property) []domain.Property {
	var out []domain.Property
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
