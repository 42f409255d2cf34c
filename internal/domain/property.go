package domain

// Property names a synchronizable node property
type Property string

const (
	PropFills     Property = "fills"
	PropOpacity   Property = "opacity"
	PropBlendMode Property = "blendMode"
	PropVisible   Property = "visible"

	PropStrokes            Property = "strokes"
	PropStrokeWeight       Property = "strokeWeight"
	PropStrokeAlign        Property = "strokeAlign"
	PropStrokeCap          Property = "strokeCap"
	PropStrokeJoin         Property = "strokeJoin"
	PropDashPattern        Property = "dashPattern"
	PropStrokeMiterLimit   Property = "strokeMiterLimit"
	PropStrokeTopWeight    Property = "strokeTopWeight"
	PropStrokeBottomWeight Property = "strokeBottomWeight"
	PropStrokeLeftWeight   Property = "strokeLeftWeight"
	PropStrokeRightWeight  Property = "strokeRightWeight"

	PropEffects Property = "effects"

	PropCornerRadius      Property = "cornerRadius"
	PropCornerSmoothing   Property = "cornerSmoothing"
	PropTopLeftRadius     Property = "topLeftRadius"
	PropTopRightRadius    Property = "topRightRadius"
	PropBottomLeftRadius  Property = "bottomLeftRadius"
	PropBottomRightRadius Property = "bottomRightRadius"

	PropFontName            Property = "fontName"
	PropFontSize            Property = "fontSize"
	PropLetterSpacing       Property = "letterSpacing"
	PropLineHeight          Property = "lineHeight"
	PropParagraphIndent     Property = "paragraphIndent"
	PropParagraphSpacing    Property = "paragraphSpacing"
	PropTextCase            Property = "textCase"
	PropTextDecoration      Property = "textDecoration"
	PropTextAlignHorizontal Property = "textAlignHorizontal"
	PropTextAlignVertical   Property = "textAlignVertical"

	PropLayoutMode              Property = "layoutMode"
	PropPrimaryAxisAlignItems   Property = "primaryAxisAlignItems"
	PropCounterAxisAlignItems   Property = "counterAxisAlignItems"
	PropItemReverseZIndex       Property = "itemReverseZIndex"
	PropStrokesIncludedInLayout Property = "strokesIncludedInLayout"
	PropLayoutWrap              Property = "layoutWrap"

	PropPrimaryAxisSizingMode  Property = "primaryAxisSizingMode"
	PropCounterAxisSizingMode  Property = "counterAxisSizingMode"
	PropLayoutSizingHorizontal Property = "layoutSizingHorizontal"
	PropLayoutSizingVertical   Property = "layoutSizingVertical"

	PropItemSpacing        Property = "itemSpacing"
	PropCounterAxisSpacing Property = "counterAxisSpacing"

	PropPaddingLeft   Property = "paddingLeft"
	PropPaddingRight  Property = "paddingRight"
	PropPaddingTop    Property = "paddingTop"
	PropPaddingBottom Property = "paddingBottom"
)

// SyncGroup names a set of properties that are synchronized together
type SyncGroup string

const (
	GroupFills     SyncGroup = "fills"
	GroupStrokes   SyncGroup = "strokes"
	GroupEffects   SyncGroup = "effects"
	GroupText      SyncGroup = "text"
	GroupCorners   SyncGroup = "corners"
	GroupFlow      SyncGroup = "flow"
	GroupDimension SyncGroup = "dimension"
	GroupGap       SyncGroup = "gap"
	GroupPadding   SyncGroup = "padding"
	GroupName      SyncGroup = "name"
)

// AllGroups lists every sync group in application order
var AllGroups = []SyncGroup{
	GroupName,
	GroupFills,
	GroupStrokes,
	GroupEffects,
	GroupCorners,
	GroupText,
	GroupFlow,
	GroupDimension,
	GroupGap,
	GroupPadding,
}

// groupProperties holds the flat property lists. Name and the text font are
// handled separately by the synchronizer.
var groupProperties = map[SyncGroup][]Property{
	GroupFills: {PropFills, PropOpacity, PropBlendMode, PropVisible},
	GroupStrokes: {
		PropStrokes, PropStrokeWeight, PropStrokeAlign,
		PropStrokeCap, PropStrokeJoin, PropDashPattern, PropStrokeMiterLimit,
		PropStrokeTopWeight, PropStrokeBottomWeight, PropStrokeLeftWeight, PropStrokeRightWeight,
	},
	GroupEffects: {PropEffects},
	GroupCorners: {
		PropCornerRadius, PropCornerSmoothing,
		PropTopLeftRadius, PropTopRightRadius, PropBottomLeftRadius, PropBottomRightRadius,
	},
	GroupText: {
		PropFontSize, PropLetterSpacing, PropLineHeight,
		PropParagraphIndent, PropParagraphSpacing, PropTextCase,
		PropTextDecoration, PropTextAlignHorizontal, PropTextAlignVertical,
	},
	GroupFlow: {
		PropLayoutMode, PropPrimaryAxisAlignItems, PropCounterAxisAlignItems,
		PropItemReverseZIndex, PropStrokesIncludedInLayout, PropLayoutWrap,
	},
	GroupDimension: {
		PropPrimaryAxisSizingMode, PropCounterAxisSizingMode,
		PropLayoutSizingHorizontal, PropLayoutSizingVertical,
	},
	GroupGap:     {PropItemSpacing, PropCounterAxisSpacing},
	GroupPadding: {PropPaddingLeft, PropPaddingRight, PropPaddingTop, PropPaddingBottom},
}

// GroupProperties returns the plain properties copied for a group
func GroupProperties(g SyncGroup) []Property {
	return groupProperties[g]
}

// ParseSyncGroup returns the group with the given name
func ParseSyncGroup(s string) (SyncGroup, bool) {
	for _, g := range AllGroups {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

// PropertyGroup returns the group a property belongs to
func PropertyGroup(p Property) (SyncGroup, bool) {
	if p == PropFontName {
		return GroupText, true
	}
	for g, props := range groupProperties {
		for _, candidate := range props {
			if candidate == p {
				return g, true
			}
		}
	}
	return "", false
}

// IsTextProperty reports whether p only exists on text nodes
func IsTextProperty(p Property) bool {
	g, ok := PropertyGroup(p)
	return ok && g == GroupText
}

// AllProperties lists every synchronizable property, font included, in
// group order
func AllProperties() []Property {
	var props []Property
	for _, g := range AllGroups {
		if g == GroupText {
			props = append(props, PropFontName)
		}
		props = append(props, groupProperties[g]...)
	}
	return props
}
