package availability

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	providerRepo "github.com/m04kA/SMC-SlotEngine/internal/infra/storage/provider"
	catalogClient "github.com/m04kA/SMC-SlotEngine/internal/integrations/catalogservice"
)

// Resolution услуга и подходящие для неё мастера
// Service == nil означает, что услуга не найдена
type Resolution struct {
	Service   *domain.Service
	Providers []*domain.Provider
}

// Resolver определяет мастеров, которые могут выполнить услугу
type Resolver struct {
	catalog   ServiceCatalog
	directory ProviderDirectory
	logger    Logger
}

// NewResolver создает новый экземпляр Resolver
func NewResolver(catalog ServiceCatalog, directory ProviderDirectory, logger Logger) *Resolver {
	return &Resolver{
		catalog:   catalog,
		directory: directory,
		logger:    logger,
	}
}

// Resolve возвращает мастеров для (salonID, serviceID, providerID)
// Если providerID задан и это активный мастер салона, возвращается только он.
// Иначе - все активные мастера салона со специализацией категории услуги, упорядоченные по имени.
// Ненайденная услуга или отсутствие мастеров не считаются ошибкой.
func (r *Resolver) Resolve(ctx context.Context, salonID, serviceID int64, providerID *int64) (*Resolution, error) {
	service, err := r.catalog.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			r.logger.Warn("Resolve: service id=%d not found", serviceID)
			return &Resolution{}, nil
		}
		r.logger.Error("Resolve: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: Resolve - get service: %v", ErrUpstreamUnavailable, err)
	}

	if providerID != nil {
		preferred, err := r.preferredProvider(ctx, salonID, *providerID)
		if err != nil {
			return nil, err
		}
		if preferred != nil {
			return &Resolution{Service: service, Providers: []*domain.Provider{preferred}}, nil
		}
	}

	listed, err := r.directory.ListEligibleProviders(ctx, salonID, service.Category)
	if err != nil {
		r.logger.Error("Resolve: failed to list providers for salon=%d, category=%s: %v", salonID, service.Category, err)
		return nil, fmt.Errorf("%w: Resolve - list providers: %v", ErrUpstreamUnavailable, err)
	}

	providers := make([]*domain.Provider, 0, len(listed))
	for _, p := range listed {
		if p != nil && p.IsEligible(salonID, service.Category) {
			providers = append(providers, p)
		}
	}
	sortProviders(providers)

	r.logger.Info("Resolve: %d eligible providers for salon=%d, service=%d", len(providers), salonID, serviceID)
	return &Resolution{Service: service, Providers: providers}, nil
}

// preferredProvider возвращает nil без ошибки, если мастер не найден, неактивен или из другого салона
func (r *Resolver) preferredProvider(ctx context.Context, salonID, providerID int64) (*domain.Provider, error) {
	p, err := r.directory.GetProvider(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			r.logger.Warn("Resolve: preferred provider id=%d not found, falling back to eligible providers", providerID)
			return nil, nil
		}
		r.logger.Error("Resolve: failed to get provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: Resolve - get provider: %v", ErrUpstreamUnavailable, err)
	}

	if !p.IsActive || p.SalonID != salonID {
		r.logger.Warn("Resolve: preferred provider id=%d is inactive or belongs to another salon", providerID)
		return nil, nil
	}
	return p, nil
}

func sortProviders(providers []*domain.Provider) {
	sort.SliceStable(providers, func(i, j int) bool {
		if providers[i].Name != providers[j].Name {
			return providers[i].Name < providers[j].Name
		}
		return providers[i].ID < providers[j].ID
	})
}
