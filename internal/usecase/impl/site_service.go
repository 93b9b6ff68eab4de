package impl

import (
	"context"
	"log/slog"

	deliverycontext "hallcms/internal/delivery/context"
	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// siteService implements the SiteUsecase interface.
type siteService struct {
	txManager    repository.TransactionManager
	settingsRepo repository.SettingsRepository
	documentRepo repository.DocumentRepository
	logger       *slog.Logger
}

// SiteServiceParams holds dependencies for siteService, injected by Fx.
type SiteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SettingsRepo repository.SettingsRepository
	DocumentRepo repository.DocumentRepository
	Logger       *slog.Logger
}

// NewSiteService is the constructor for siteService.
func NewSiteService(params SiteServiceParams) usecase.SiteUsecase {
	return &siteService{
		txManager:    params.TxManager,
		settingsRepo: params.SettingsRepo,
		documentRepo: params.DocumentRepo,
		logger:       params.Logger,
	}
}

func (srv *siteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetSettings returns the saved settings, or built-in defaults before any
// admin has saved a record.
func (srv *siteService) GetSettings(ctx context.Context) (*entity.SiteSettings, error) {
	settings, err := srv.settingsRepo.Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load site settings")
	}
	if settings == nil {
		return entity.DefaultSiteSettings(), nil
	}

	return settings, nil
}

// UpdateSettings merges the provided fields into the stored record, starting
// from the built-in defaults on first write. Omitted fields keep their value.
func (srv *siteService) UpdateSettings(ctx context.Context, input usecase.SettingsInput) (*entity.SiteSettings, error) {
	settings, err := srv.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	applyString(&settings.HeroImage, input.HeroImage)
	applyString(&settings.WelcomeImage, input.WelcomeImage)
	applyString(&settings.HeroTitle, input.HeroTitle)
	applyString(&settings.HeroSubtitle, input.HeroSubtitle)
	applyString(&settings.WelcomeIntro, input.WelcomeIntro)
	applyString(&settings.WelcomeBody, input.WelcomeBody)
	if input.HallImages != nil {
		settings.HallImages = input.HallImages
	}
	applyString(&settings.AGMTitle, input.AGMTitle)
	applyString(&settings.AGMDate, input.AGMDate)
	applyString(&settings.AGMTime, input.AGMTime)
	applyString(&settings.AGMDescription, input.AGMDescription)
	applyString(&settings.AGMDocumentURL, input.AGMDocumentURL)
	applyString(&settings.MembershipFormURL, input.MembershipFormURL)

	if err := srv.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Site settings updated")

	return settings, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func (srv *siteService) ListDocuments(ctx context.Context) ([]*entity.GovernanceDocument, error) {
	return srv.documentRepo.FindAll(ctx)
}

// CreateDocument appends a document at the end of the ordering. The max-order
// read and the insert share a transaction so concurrent creates cannot collide.
func (srv *siteService) CreateDocument(ctx context.Context, input usecase.DocumentInput) (*entity.GovernanceDocument, error) {
	document := &entity.GovernanceDocument{
		Title:    input.Title,
		FileURL:  input.FileURL,
		FileType: input.FileType,
		FileSize: input.FileSize,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		documentRepo := repoFactory.DocumentRepo()

		maxOrder, err := documentRepo.MaxOrder(ctx)
		if err != nil {
			return err
		}
		document.Order = maxOrder + 1

		return documentRepo.Create(ctx, document)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Document created",
		slog.Any("documentID", document.ID),
		slog.Int("order", document.Order),
	)

	return document, nil
}

func (srv *siteService) UpdateDocument(ctx context.Context, id uuid.UUID, input usecase.DocumentInput) (*entity.GovernanceDocument, error) {
	existing, err := srv.documentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.NotFound("Document not found")
		}

		return nil, errors.Wrap(err, "failed to load document")
	}

	existing.Title = input.Title
	existing.FileURL = input.FileURL
	existing.FileType = input.FileType
	existing.FileSize = input.FileSize

	if err := srv.documentRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (srv *siteService) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if err := srv.documentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return domainerrors.NotFound("Document not found")
		}

		return err
	}

	return nil
}

// ReorderDocuments rewrites the ordering to match the given ID sequence.
// All writes happen in one transaction; an unknown ID aborts the whole reorder.
func (srv *siteService) ReorderDocuments(ctx context.Context, ids []uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		documentRepo := repoFactory.DocumentRepo()

		for position, id := range ids {
			if err := documentRepo.UpdateOrder(ctx, id, position); err != nil {
				if errors.Is(err, repository.ErrDocumentNotFound) {
					return domainerrors.NotFound("Document not found")
				}

				return err
			}
		}

		return nil
	})
}
