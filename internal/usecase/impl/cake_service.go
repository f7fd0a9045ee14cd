package impl

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"cakehaven/config"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/policy"
	"cakehaven/internal/domain/repository"
	"cakehaven/internal/domain/service"
	logs "cakehaven/internal/infra/log"
	"cakehaven/internal/usecase"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var defaultImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// cakeService implements the CakeUsecase interface.
type cakeService struct {
	repos        repository.RepositoryFactory
	images       service.ImageStore
	allowedTypes []string
	maxUpload    int64
	logger       *slog.Logger
	now          func() time.Time
}

// NewCakeService is the constructor for cakeService.
func NewCakeService(
	repos repository.RepositoryFactory,
	images service.ImageStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CakeUsecase {
	srv := &cakeService{
		repos:        repos,
		images:       images,
		allowedTypes: defaultImageTypes,
		maxUpload:    5 << 20,
		logger:       logger,
		now:          time.Now,
	}
	if cfg.Storage != nil {
		if len(cfg.Storage.AllowedContentTypes) > 0 {
			srv.allowedTypes = cfg.Storage.AllowedContentTypes
		}
		if cfg.Storage.MaxUploadBytes > 0 {
			srv.maxUpload = cfg.Storage.MaxUploadBytes
		}
	}

	return srv
}

// CreateCake adds an active cake owned by the calling shop admin.
func (srv *cakeService) CreateCake(ctx context.Context, id entity.Identity, input usecase.CreateCakeInput) (*entity.Cake, error) {
	if err := policy.Cake(id, policy.ActionCreate, nil); err != nil {
		return nil, err
	}
	if !input.Price.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
	}
	if input.Servings < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("servings must be at least 1")
	}
	name, category := strings.TrimSpace(input.Name), strings.TrimSpace(input.Category)
	if name == "" || category == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and category must not be blank")
	}
	if err := requireActiveAccount(ctx, srv.repos, id); err != nil {
		return nil, err
	}

	cake := &entity.Cake{
		ShopID:   id.SubjectID,
		Name:     name,
		Price:    input.Price.Round(2),
		Type:     strings.TrimSpace(input.Type),
		Flavour:  strings.TrimSpace(input.Flavour),
		Category: category,
		Size:     strings.TrimSpace(input.Size),
		Servings: input.Servings,
		Images:   cleanImages(input.Images),
		Status:   entity.StatusActive,
	}
	if err := srv.repos.CakeRepo().Create(ctx, cake); err != nil {
		return nil, errors.Wrap(err, "failed to create cake")
	}

	logs.FromContext(ctx, srv.logger).Info("Cake created",
		slog.String("cake_id", cake.ID.String()),
		slog.String("shop_id", cake.ShopID.String()))

	return cake, nil
}

// UpdateCake edits the fields of an active cake. Inactive cakes must be reactivated first.
func (srv *cakeService) UpdateCake(ctx context.Context, id entity.Identity, cakeID uuid.UUID, input usecase.UpdateCakeInput) (*entity.Cake, error) {
	cake, err := srv.lookup(ctx, cakeID)
	if err != nil {
		return nil, err
	}
	if err := policy.Cake(id, policy.ActionUpdate, cake); err != nil {
		return nil, err
	}
	if err := requireActiveAccount(ctx, srv.repos, id); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if cake.Name = strings.TrimSpace(*input.Name); cake.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be blank")
		}
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
		}
		cake.Price = input.Price.Round(2)
	}
	if input.Type != nil {
		cake.Type = strings.TrimSpace(*input.Type)
	}
	if input.Flavour != nil {
		cake.Flavour = strings.TrimSpace(*input.Flavour)
	}
	if input.Category != nil {
		if cake.Category = strings.TrimSpace(*input.Category); cake.Category == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("category must not be blank")
		}
	}
	if input.Size != nil {
		cake.Size = strings.TrimSpace(*input.Size)
	}
	if input.Servings != nil {
		if *input.Servings < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("servings must be at least 1")
		}
		cake.Servings = *input.Servings
	}
	if input.Images != nil {
		cake.Images = cleanImages(input.Images)
	}

	if err := srv.repos.CakeRepo().Update(ctx, cake); err != nil {
		if errors.Is(err, repository.ErrCakeNotFound) {
			return nil, srv.explainLostUpdate(ctx, id, cakeID)
		}

		return nil, errors.Wrap(err, "failed to update cake")
	}

	return cake, nil
}

// explainLostUpdate re-reads a cake whose guarded update matched no row.
// The row was deactivated, deleted or reassigned after the first read.
func (srv *cakeService) explainLostUpdate(ctx context.Context, id entity.Identity, cakeID uuid.UUID) error {
	fresh, err := srv.lookup(ctx, cakeID)
	if err != nil {
		return err
	}
	if err := policy.Cake(id, policy.ActionUpdate, fresh); err != nil {
		return err
	}

	return domainerrors.ErrConflict.WithDetails("cake changed during the update, please retry")
}

// ToggleCakeStatus flips the cake between active and inactive.
func (srv *cakeService) ToggleCakeStatus(ctx context.Context, id entity.Identity, cakeID uuid.UUID) (*entity.Cake, error) {
	cake, err := srv.lookup(ctx, cakeID)
	if err != nil {
		return nil, err
	}
	if err := policy.Cake(id, policy.ActionToggle, cake); err != nil {
		return nil, err
	}
	if err := requireActiveAccount(ctx, srv.repos, id); err != nil {
		return nil, err
	}

	next := cake.Status.Toggled()
	if err := srv.repos.CakeRepo().UpdateStatus(ctx, cake.ID, next); err != nil {
		return nil, mapCakeError(err, "failed to toggle cake status")
	}
	cake.Status = next

	logs.FromContext(ctx, srv.logger).Info("Cake status toggled",
		slog.String("cake_id", cake.ID.String()),
		slog.String("status", string(cake.Status)))

	return cake, nil
}

func (srv *cakeService) DeleteCake(ctx context.Context, id entity.Identity, cakeID uuid.UUID) error {
	cake, err := srv.lookup(ctx, cakeID)
	if err != nil {
		return err
	}
	if err := policy.Cake(id, policy.ActionDelete, cake); err != nil {
		return err
	}
	if err := requireActiveAccount(ctx, srv.repos, id); err != nil {
		return err
	}

	if err := srv.repos.CakeRepo().Delete(ctx, cake.ID); err != nil {
		return mapCakeError(err, "failed to delete cake")
	}

	logs.FromContext(ctx, srv.logger).Info("Cake deleted", slog.String("cake_id", cake.ID.String()))

	return nil
}

// GetAllCakes lists a shop admin's own catalog, including inactive cakes.
// Everyone else sees active cakes from every shop that is still active.
func (srv *cakeService) GetAllCakes(ctx context.Context, id entity.Identity, query usecase.CakeQuery) (*entity.Page[*entity.Cake], error) {
	if err := policy.Cake(id, policy.ActionList, nil); err != nil {
		return nil, err
	}

	filter := repository.CakeFilter{
		ListParams: query.Params(),
		Category:   query.Category,
		Type:       query.Type,
		Flavour:    query.Flavour,
	}
	if id.Is(entity.RoleShopAdmin) {
		owner := id.SubjectID
		filter.OwnerID = &owner
		filter.Status = query.Status
	} else {
		active := entity.StatusActive
		filter.Status = &active
		filter.ListedShopsOnly = true
	}

	cakes, total, err := srv.repos.CakeRepo().List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cakes")
	}

	return usecase.NewPage(cakes, total, query.ListQuery), nil
}

func (srv *cakeService) GetCake(ctx context.Context, id entity.Identity, cakeID uuid.UUID) (*entity.Cake, error) {
	cake, err := srv.lookup(ctx, cakeID)
	if err != nil {
		return nil, err
	}
	if err := policy.Cake(id, policy.ActionRead, cake); err != nil {
		return nil, err
	}

	return cake, nil
}

// UploadCakeImage stores the image under cakes/<owner>/ and returns its URL.
// The declared content type must match the sniffed one.
func (srv *cakeService) UploadCakeImage(ctx context.Context, id entity.Identity, input usecase.UploadImageInput) (string, error) {
	if err := policy.Cake(id, policy.ActionCreate, nil); err != nil {
		return "", err
	}

	if len(input.Data) == 0 {
		return "", domainerrors.ErrUnsupportedImage.WithDetails("image is empty")
	}
	if int64(len(input.Data)) > srv.maxUpload {
		return "", domainerrors.ErrUnsupportedImage.WithDetails("image is too large")
	}

	contentType := http.DetectContentType(input.Data)
	ext, known := imageExtensions[contentType]
	if !known || !slices.Contains(srv.allowedTypes, contentType) {
		return "", domainerrors.ErrUnsupportedImage.WithDetails("content type " + contentType + " is not allowed")
	}
	if declared := mediaType(input.ContentType); declared != "" && declared != contentType {
		return "", domainerrors.ErrUnsupportedImage.WithDetails("declared content type does not match the file")
	}
	if err := requireActiveAccount(ctx, srv.repos, id); err != nil {
		return "", err
	}

	key := "cakes/" + id.SubjectID.String() + "/" + uuid.NewString() + ext
	url, err := srv.images.Put(ctx, key, contentType, input.Data)
	if err != nil {
		return "", errors.Wrap(err, "failed to store image")
	}

	logs.FromContext(ctx, srv.logger).Info("Cake image uploaded",
		slog.String("key", key),
		slog.Int("bytes", len(input.Data)))

	return url, nil
}

// lookup returns nil without error when the cake does not exist, so the policy decides the outcome.
func (srv *cakeService) lookup(ctx context.Context, cakeID uuid.UUID) (*entity.Cake, error) {
	cake, err := srv.repos.CakeRepo().FindByID(ctx, cakeID)
	if err != nil {
		if errors.Is(err, repository.ErrCakeNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find cake")
	}

	return cake, nil
}

func mapCakeError(err error, message string) error {
	if errors.Is(err, repository.ErrCakeNotFound) {
		return domainerrors.ErrCakeNotFound
	}

	return errors.Wrap(err, message)
}

func cleanImages(images []string) []string {
	cleaned := make([]string, 0, len(images))
	for _, image := range images {
		if image = strings.TrimSpace(image); image != "" {
			cleaned = append(cleaned, image)
		}
	}

	return cleaned
}

func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")

	return strings.ToLower(strings.TrimSpace(mt))
}
