// Package content serves the site's immutable reference data.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/helloasmak/vyra/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalog struct {
	Services     []domain.Service        `yaml:"services"`
	FAQs         []domain.FAQ            `yaml:"faqs"`
	Partners     []domain.Partner        `yaml:"partners"`
	PartnerSteps []domain.PartnerStep    `yaml:"partner_steps"`
	Careers      []domain.CareerOpening  `yaml:"careers"`
	Support      []domain.SupportChannel `yaml:"support"`
	Legal        []domain.LegalDocument  `yaml:"legal"`
}

// Store holds the parsed catalog. It is never mutated after loading.
type Store struct {
	cat      catalog
	services map[string]domain.Service
	legal    map[domain.LegalKind]domain.LegalDocument
}

// Default returns the store built from the embedded catalog.
func Default() (*Store, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog from path; an empty path falls back to the embedded one.
func LoadFile(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(b)
}

// Parse builds a store from YAML. Duplicate or empty ids are rejected.
func Parse(b []byte) (*Store, error) {
	var cat catalog
	if err := yaml.Unmarshal(b, &cat); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	s := &Store{
		cat:      cat,
		services: make(map[string]domain.Service, len(cat.Services)),
		legal:    make(map[domain.LegalKind]domain.LegalDocument, len(cat.Legal)),
	}
	for i, svc := range cat.Services {
		if strings.TrimSpace(svc.ID) == "" {
			return nil, fmt.Errorf("service %d has an empty id", i)
		}
		if _, dup := s.services[svc.ID]; dup {
			return nil, fmt.Errorf("duplicate service id %q", svc.ID)
		}
		s.services[svc.ID] = svc
	}
	for i, doc := range cat.Legal {
		if strings.TrimSpace(string(doc.Kind)) == "" {
			return nil, fmt.Errorf("legal document %d has an empty kind", i)
		}
		if _, dup := s.legal[doc.Kind]; dup {
			return nil, fmt.Errorf("duplicate legal document %q", doc.Kind)
		}
		s.legal[doc.Kind] = doc
	}
	return s, nil
}

// Services returns the catalog in display order.
func (s *Store) Services() []domain.Service {
	return lo.Map(s.cat.Services, func(svc domain.Service, _ int) domain.Service {
		return cloneService(svc)
	})
}

// Service returns one service by id.
func (s *Store) Service(id string) (domain.Service, error) {
	svc, ok := s.services[id]
	if !ok {
		return domain.Service{}, fmt.Errorf("service %q: %w", id, domain.ErrNotFound)
	}
	return cloneService(svc), nil
}

// ServiceTitles lists the booking options: every service title plus Bespoke Concierge.
func (s *Store) ServiceTitles() []string {
	titles := lo.Map(s.cat.Services, func(svc domain.Service, _ int) string { return svc.Title })
	return append(titles, domain.BespokeConcierge)
}

func (s *Store) FAQs() []domain.FAQ {
	return append([]domain.FAQ(nil), s.cat.FAQs...)
}

func (s *Store) Partners() []domain.Partner {
	return append([]domain.Partner(nil), s.cat.Partners...)
}

func (s *Store) PartnerSteps() []domain.PartnerStep {
	return append([]domain.PartnerStep(nil), s.cat.PartnerSteps...)
}

func (s *Store) Careers() []domain.CareerOpening {
	return append([]domain.CareerOpening(nil), s.cat.Careers...)
}

func (s *Store) SupportChannels() []domain.SupportChannel {
	return append([]domain.SupportChannel(nil), s.cat.Support...)
}

// Legal returns the privacy, terms or cookie policy.
func (s *Store) Legal(kind domain.LegalKind) (domain.LegalDocument, error) {
	doc, ok := s.legal[kind]
	if !ok {
		return domain.LegalDocument{}, fmt.Errorf("%q: %w", kind, domain.ErrUnknownLegalKind)
	}
	doc.Sections = append([]domain.LegalSection(nil), doc.Sections...)
	return doc, nil
}

func cloneService(svc domain.Service) domain.Service {
	svc.Features = append([]string(nil), svc.Features...)
	return svc
}
