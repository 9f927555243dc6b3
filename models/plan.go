package models

import (
	"encoding/json"
	"fmt"
)

// SectionKind discriminates the section variants inside a plan.
type SectionKind string

const (
	SectionIntro     SectionKind = "intro"
	SectionRoadmap   SectionKind = "roadmap"
	SectionToday     SectionKind = "today"
	SectionChecklist SectionKind = "checklist"
	SectionWeekly    SectionKind = "weekly"
	SectionResources SectionKind = "resources"
	SectionGear      SectionKind = "gear"
	SectionTips      SectionKind = "tips"
	SectionAdvanced  SectionKind = "advanced"
)

// ResourceType categorizes an external learning resource.
type ResourceType string

const (
	ResourceVideo     ResourceType = "video"
	ResourceArticle   ResourceType = "article"
	ResourceBook      ResourceType = "book"
	ResourceCourse    ResourceType = "course"
	ResourceCommunity ResourceType = "community"
	ResourceSearch    ResourceType = "search"
)

// Theme is the two-color gradient rendered behind a plan.
type Theme struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TaskItem is one actionable task inside a today or checklist section.
// Minutes and XP are optional in model output; nil means unspecified.
type TaskItem struct {
	Label   string `json:"label"`
	Minutes *int   `json:"minutes,omitempty"`
	XP      *int   `json:"xp,omitempty"`
}

// Resource is one external link with a usage note.
type Resource struct {
	Title string       `json:"title"`
	Type  ResourceType `json:"type"`
	URL   string       `json:"url"`
	Note  string       `json:"note"`
}

// Phase is one stage of a roadmap section.
type Phase struct {
	Name  string   `json:"name"`
	Goal  string   `json:"goal"`
	Focus []string `json:"focus"`
}

// Week is one entry of a weekly breakdown.
type Week struct {
	Week     int      `json:"week"`
	Focus    string   `json:"focus"`
	Practice []string `json:"practice"`
	Goal     string   `json:"goal"`
}

// Mistake pairs a common mistake with its fix.
type Mistake struct {
	Mistake string `json:"mistake"`
	Fix     string `json:"fix"`
}

// Variant payloads, one per section kind.

type IntroSection struct {
	Body         string   `json:"body"`
	BulletPoints []string `json:"bulletPoints,omitempty"`
}

type RoadmapSection struct {
	Milestones []string `json:"milestones"`
	Phases     []Phase  `json:"phases,omitempty"`
}

type TodaySection struct {
	Items []TaskItem `json:"items"`
}

type ChecklistSection struct {
	Items []TaskItem `json:"items"`
}

type WeeklySection struct {
	Weeks []Week `json:"weeks"`
}

type ResourcesSection struct {
	Resources []Resource `json:"resources"`
}

type GearSection struct {
	Starter         []string `json:"starter"`
	NiceToHave      []string `json:"niceToHave"`
	MoneySavingTips []string `json:"moneySavingTips"`
}

type TipsSection struct {
	Mistakes []Mistake `json:"mistakes"`
}

type AdvancedSection struct {
	Directions    []string `json:"directions"`
	LongTermGoals []string `json:"longTermGoals"`
}

// Section is a closed tagged union over the nine section kinds. Exactly one
// variant pointer is non-nil, matching Kind. Decoding dispatches on the
// "kind" field; an unrecognized kind is a decode error, never a silently
// empty section.
type Section struct {
	ID          string
	Kind        SectionKind
	Title       string
	Description string

	Intro     *IntroSection
	Roadmap   *RoadmapSection
	Today     *TodaySection
	Checklist *ChecklistSection
	Weekly    *WeeklySection
	Resources *ResourcesSection
	Gear      *GearSection
	Tips      *TipsSection
	Advanced  *AdvancedSection
}

type sectionHead struct {
	ID          string      `json:"id"`
	Kind        SectionKind `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var head sectionHead
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	*s = Section{
		ID:          head.ID,
		Kind:        head.Kind,
		Title:       head.Title,
		Description: head.Description,
	}

	switch head.Kind {
	case SectionIntro:
		s.Intro = &IntroSection{}
		return json.Unmarshal(data, s.Intro)
	case SectionRoadmap:
		s.Roadmap = &RoadmapSection{}
		return json.Unmarshal(data, s.Roadmap)
	case SectionToday:
		s.Today = &TodaySection{}
		return json.Unmarshal(data, s.Today)
	case SectionChecklist:
		s.Checklist = &ChecklistSection{}
		return json.Unmarshal(data, s.Checklist)
	case SectionWeekly:
		s.Weekly = &WeeklySection{}
		return json.Unmarshal(data, s.Weekly)
	case SectionResources:
		s.Resources = &ResourcesSection{}
		return json.Unmarshal(data, s.Resources)
	case SectionGear:
		s.Gear = &GearSection{}
		return json.Unmarshal(data, s.Gear)
	case SectionTips:
		s.Tips = &TipsSection{}
		return json.Unmarshal(data, s.Tips)
	case SectionAdvanced:
		s.Advanced = &AdvancedSection{}
		return json.Unmarshal(data, s.Advanced)
	default:
		return fmt.Errorf("unknown section kind %q", head.Kind)
	}
}

func (s Section) MarshalJSON() ([]byte, error) {
	head := sectionHead{ID: s.ID, Kind: s.Kind, Title: s.Title, Description: s.Description}

	switch s.Kind {
	case SectionIntro:
		return marshalSection(head, s.Intro)
	case SectionRoadmap:
		return marshalSection(head, s.Roadmap)
	case SectionToday:
		return marshalSection(head, s.Today)
	case SectionChecklist:
		return marshalSection(head, s.Checklist)
	case SectionWeekly:
		return marshalSection(head, s.Weekly)
	case SectionResources:
		return marshalSection(head, s.Resources)
	case SectionGear:
		return marshalSection(head, s.Gear)
	case SectionTips:
		return marshalSection(head, s.Tips)
	case SectionAdvanced:
		return marshalSection(head, s.Advanced)
	default:
		return nil, fmt.Errorf("unknown section kind %q", s.Kind)
	}
}

// marshalSection flattens the shared head fields and the variant payload into
// one JSON object, the shape the model produces and the client consumes.
func marshalSection(head sectionHead, variant any) ([]byte, error) {
	if variant == nil || isNilPointer(variant) {
		return nil, fmt.Errorf("section %q has no %s payload", head.ID, head.Kind)
	}

	headJSON, err := json.Marshal(head)
	if err != nil {
		return nil, err
	}
	variantJSON, err := json.Marshal(variant)
	if err != nil {
		return nil, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(headJSON, &merged); err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(variantJSON, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

func isNilPointer(v any) bool {
	switch p := v.(type) {
	case *IntroSection:
		return p == nil
	case *RoadmapSection:
		return p == nil
	case *TodaySection:
		return p == nil
	case *ChecklistSection:
		return p == nil
	case *WeeklySection:
		return p == nil
	case *ResourcesSection:
		return p == nil
	case *GearSection:
		return p == nil
	case *TipsSection:
		return p == nil
	case *AdvancedSection:
		return p == nil
	}
	return false
}

// Plan is the structured learning plan generated for one hobby/level pair.
// Section order is meaningful (it is the rendering order) and duplicate kinds
// are allowed.
type Plan struct {
	Hobby    string    `json:"hobby"`
	Level    string    `json:"level"`
	Icon     string    `json:"icon"`
	Theme    Theme     `json:"theme"`
	Sections []Section `json:"sections"`
}
