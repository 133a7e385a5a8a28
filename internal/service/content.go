package service

import (
	"github.com/helloasmak/vyra/internal/domain"
)

func (s *Service) Services() []domain.Service {
	return s.catalog.Services()
}

func (s *Service) Service(id string) (domain.Service, error) {
	return s.catalog.Service(id)
}

func (s *Service) FAQs() []domain.FAQ {
	return s.catalog.FAQs()
}

// Partners returns the partner categories and the onboarding steps.
func (s *Service) Partners() ([]domain.Partner, []domain.PartnerStep) {
	return s.catalog.Partners(), s.catalog.PartnerSteps()
}

func (s *Service) Careers() []domain.CareerOpening {
	return s.catalog.Careers()
}

func (s *Service) SupportChannels() []domain.SupportChannel {
	return s.catalog.SupportChannels()
}

func (s *Service) Legal(kind domain.LegalKind) (domain.LegalDocument, error) {
	return s.catalog.Legal(kind)
}
