package entity

import (
	"fmt"
	"strings"
)

// ProfessionalKind identifies the concrete variant of a HealthProfessional
type ProfessionalKind string

const (
	KindGeneralPractitioner ProfessionalKind = "general_practitioner"
	KindPediatrician        ProfessionalKind = "pediatrician"
)

// ParseKind maps a textual kind onto a ProfessionalKind.
func ParseKind(s string) (ProfessionalKind, error) {
	switch ProfessionalKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindGeneralPractitioner:
		return KindGeneralPractitioner, nil
	case KindPediatrician:
		return KindPediatrician, nil
	}
	return "", &ValidationError{
		Field:   FieldKind,
		Value:   s,
		Kind:    ErrInvalidFormat,
		Message: fmt.Sprintf("unknown professional kind %q", s),
	}
}

// Practice is the variant-specific part of a HealthProfessional. It is implemented
// only by *GeneralPractice and *Pediatrics.
type Practice interface {
	Kind() ProfessionalKind
	Title() string
	ScopeLabel() string
	Specialty() string
	Details() string
	ServiceDescription() string

	setSpecialty(specialty string)
	emptySpecialtyMessage() string
}

// GeneralPractice holds the general practitioner payload
type GeneralPractice struct {
	specialty       string
	acceptsChildren bool
}

func (g *GeneralPractice) Kind() ProfessionalKind { return KindGeneralPractitioner }
func (g *GeneralPractice) Title() string          { return "General Practitioner" }
func (g *GeneralPractice) ScopeLabel() string     { return "General Practice" }
func (g *GeneralPractice) Specialty() string      { return g.specialty }
func (g *GeneralPractice) AcceptsChildren() bool  { return g.acceptsChildren }

func (g *GeneralPractice) Details() string {
	accepts := "No"
	if g.acceptsChildren {
		accepts = "Yes"
	}
	return fmt.Sprintf("Specialty: %s | Accepts Children: %s", g.specialty, accepts)
}

func (g *GeneralPractice) ServiceDescription() string {
	description := "Provides general disease diagnosis, chronic disease management, health check-ups"
	if g.acceptsChildren {
		description += ", and can treat children under 14 years old"
	}
	return description
}

func (g *GeneralPractice) setSpecialty(specialty string) { g.specialty = specialty }

func (g *GeneralPractice) emptySpecialtyMessage() string {
	return "general practitioner's specialty cannot be empty (e.g. 'Community General Practice')"
}

// Pediatrics holds the pediatrician payload
type Pediatrics struct {
	specialty string
	maxAge    int
}

func (p *Pediatrics) Kind() ProfessionalKind { return KindPediatrician }
func (p *Pediatrics) Title() string          { return "Pediatrician" }
func (p *Pediatrics) ScopeLabel() string     { return "Pediatric" }
func (p *Pediatrics) Specialty() string      { return p.specialty }
func (p *Pediatrics) MaxAge() int            { return p.maxAge }

func (p *Pediatrics) Details() string {
	return fmt.Sprintf("Specialty: %s | Maximum Patient Age: %d years", p.specialty, p.maxAge)
}

func (p *Pediatrics) ServiceDescription() string {
	return fmt.Sprintf("Provides diagnosis of common illnesses, vaccination guidance, and growth assessment for children under %d years old", p.maxAge)
}

func (p *Pediatrics) setSpecialty(specialty string) { p.specialty = specialty }

func (p *Pediatrics) emptySpecialtyMessage() string {
	return "pediatrician's specialty cannot be empty (e.g. 'Pediatric Respiratory Medicine')"
}

// HealthProfessional is a doctor that can be assigned to appointments.
// A value returned by a constructor has passed every field rule; setters keep it that way.
type HealthProfessional struct {
	id             int
	name           string
	workExperience int
	practice       Practice
}

// NewGeneralPractitioner validates id, name, work experience and specialty in that order.
func NewGeneralPractitioner(id int, name string, workExperience int, specialty string, acceptsChildren bool) (*HealthProfessional, error) {
	p := &HealthProfessional{practice: &GeneralPractice{acceptsChildren: acceptsChildren}}
	if err := p.init(id, name, workExperience, specialty); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPediatrician validates id, name, work experience, specialty and max age in that order.
func NewPediatrician(id int, name string, workExperience int, specialty string, maxAge int) (*HealthProfessional, error) {
	p := &HealthProfessional{practice: &Pediatrics{}}
	if err := p.init(id, name, workExperience, specialty); err != nil {
		return nil, err
	}
	if err := p.SetMaxAge(maxAge); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *HealthProfessional) init(id int, name string, workExperience int, specialty string) error {
	if err := p.SetID(id); err != nil {
		return err
	}
	if err := p.SetName(name); err != nil {
		return err
	}
	if err := p.SetWorkExperience(workExperience); err != nil {
		return err
	}
	return p.SetSpecialty(specialty)
}

func (p *HealthProfessional) ID() int                { return p.id }
func (p *HealthProfessional) Name() string           { return p.name }
func (p *HealthProfessional) WorkExperience() int    { return p.workExperience }
func (p *HealthProfessional) Practice() Practice     { return p.practice }
func (p *HealthProfessional) Kind() ProfessionalKind { return p.practice.Kind() }
func (p *HealthProfessional) Specialty() string      { return p.practice.Specialty() }
func (p *HealthProfessional) Title() string          { return p.practice.Title() }
func (p *HealthProfessional) Details() string        { return p.practice.Details() }

// AcceptsChildren is only defined for general practitioners.
func (p *HealthProfessional) AcceptsChildren() (bool, bool) {
	gp, ok := p.practice.(*GeneralPractice)
	if !ok {
		return false, false
	}
	return gp.acceptsChildren, true
}

// MaxAge is only defined for pediatricians.
func (p *HealthProfessional) MaxAge() (int, bool) {
	ped, ok := p.practice.(*Pediatrics)
	if !ok {
		return 0, false
	}
	return ped.maxAge, true
}

func (p *HealthProfessional) ServiceDescription() string {
	return p.practice.ServiceDescription()
}

// ServiceScope is the "[... Service Scope]" report line.
func (p *HealthProfessional) ServiceScope() string {
	return fmt.Sprintf("[%s Service Scope]: %s, Work Experience: %d years",
		p.practice.ScopeLabel(), p.practice.ServiceDescription(), p.workExperience)
}

// SetID assigns the id. Once a valid id is set it cannot be replaced.
func (p *HealthProfessional) SetID(id int) error {
	if err := checkField(FieldID, id, "gt=0"); err != nil {
		return err
	}
	if p.id > 0 {
		return &ValidationError{
			Field:   FieldID,
			Value:   id,
			Kind:    ErrImmutableField,
			Message: fmt.Sprintf("doctor ID cannot be changed once set (current value: %d)", p.id),
		}
	}
	p.id = id
	return nil
}

func (p *HealthProfessional) SetName(name string) error {
	if err := checkField(FieldName, name, "notblank"); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *HealthProfessional) SetWorkExperience(years int) error {
	if err := checkField(FieldWorkExperience, years, "gte=0"); err != nil {
		return err
	}
	p.workExperience = years
	return nil
}

func (p *HealthProfessional) SetSpecialty(specialty string) error {
	if err := checkField(FieldSpecialty, specialty, "notblank"); err != nil {
		if validationErr, ok := err.(*ValidationError); ok {
			validationErr.Message = p.practice.emptySpecialtyMessage()
		}
		return err
	}
	p.practice.setSpecialty(specialty)
	return nil
}

func (p *HealthProfessional) SetAcceptsChildren(accepts bool) error {
	gp, ok := p.practice.(*GeneralPractice)
	if !ok {
		return fmt.Errorf("accepts children on %s: %w", p.practice.Kind(), ErrWrongVariant)
	}
	gp.acceptsChildren = accepts
	return nil
}

func (p *HealthProfessional) SetMaxAge(maxAge int) error {
	ped, ok := p.practice.(*Pediatrics)
	if !ok {
		return fmt.Errorf("max age on %s: %w", p.practice.Kind(), ErrWrongVariant)
	}
	if err := checkField(FieldMaxAge, maxAge, "min=1,max=18"); err != nil {
		return err
	}
	ped.maxAge = maxAge
	return nil
}
