// Package page models the scrolling page both hosts lay the animations out
// on: a full-height hero followed by content sections.
package page

import "github.com/olivier-w/backdrop/internal/surface"

// SectionSpec configures one section below the hero.
type SectionSpec struct {
	Name  string
	Waves bool
}

// Params controls section sizing.
type Params struct {
	Sections     []SectionSpec
	MinHeight    float64 // smallest section height
	SectionRatio float64 // section height as a fraction of the viewport
}

// Section is a laid-out page section in page units.
type Section struct {
	Name   string
	Top    float64
	Width  float64
	Height float64
	Waves  bool
}

// Rect returns the section's box relative to the viewport at scroll.
func (s Section) Rect(scroll float64) surface.Rect {
	return surface.Rect{X: 0, Y: s.Top - scroll, W: s.Width, H: s.Height}
}

// Layout is the page geometry for one viewport size. Sections[0] is the hero.
type Layout struct {
	ViewportW float64
	ViewportH float64
	Sections  []Section
}

// Build lays out the page for a viewport.
func Build(p Params, viewportW, viewportH float64) Layout {
	l := Layout{ViewportW: viewportW, ViewportH: viewportH}
	l.Sections = append(l.Sections, Section{Name: "hero", Width: viewportW, Height: viewportH})

	h := max(p.MinHeight, viewportH*p.SectionRatio)
	top := viewportH
	for _, spec := range p.Sections {
		l.Sections = append(l.Sections, Section{
			Name:   spec.Name,
			Top:    top,
			Width:  viewportW,
			Height: h,
			Waves:  spec.Waves,
		})
		top += h
	}
	return l
}

// Hero returns the hero section.
func (l Layout) Hero() Section {
	if len(l.Sections) == 0 {
		return Section{Name: "hero"}
	}
	return l.Sections[0]
}

// Height is the total page height.
func (l Layout) Height() float64 {
	if len(l.Sections) == 0 {
		return 0
	}
	last := l.Sections[len(l.Sections)-1]
	return last.Top + last.Height
}

// MaxScroll is the furthest the page can scroll.
func (l Layout) MaxScroll() float64 {
	return max(0, l.Height()-l.ViewportH)
}

// Content returns the sections below the hero.
func (l Layout) Content() []Section {
	if len(l.Sections) < 2 {
		return nil
	}
	return l.Sections[1:]
}
