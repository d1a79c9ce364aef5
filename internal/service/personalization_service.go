package service

import (
	"context"
	"strings"
	"time"

	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/entity"
	"ai-textbook-be/internal/repository/specification"
	"ai-textbook-be/internal/repository/unitofwork"
	"ai-textbook-be/pkg/rag"

	"github.com/google/uuid"
)

type IPersonalizationService interface {
	CreateBookmark(ctx context.Context, userId uuid.UUID, req *dto.CreateBookmarkRequest) (*dto.BookmarkResponse, error)
	ListBookmarks(ctx context.Context, userId uuid.UUID) ([]*dto.BookmarkResponse, error)
	DeleteBookmark(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	UpdateProgress(ctx context.Context, userId uuid.UUID, req *dto.UpdateProgressRequest) (*dto.ProgressResponse, error)
	ListProgress(ctx context.Context, userId uuid.UUID) ([]*dto.ProgressResponse, error)
	SetChapterPreferences(ctx context.Context, userId uuid.UUID, chapterId string, req *dto.ChapterPreferenceRequest) (*dto.ChapterPreferenceResponse, error)
	GetChapterPreferences(ctx context.Context, userId uuid.UUID, chapterId string) (*dto.PersonalizedChapterResponse, error)
	LearningPath(ctx context.Context, userId uuid.UUID) (*dto.LearningPathResponse, error)
	AdaptContent(ctx context.Context, userId uuid.UUID, req *dto.AdaptContentRequest) (*dto.AdaptContentResponse, error)
}

type personalizationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPersonalizationService(uowFactory unitofwork.RepositoryFactory) IPersonalizationService {
	return &personalizationService{uowFactory: uowFactory}
}

func (s *personalizationService) CreateBookmark(ctx context.Context, userId uuid.UUID, req *dto.CreateBookmarkRequest) (*dto.BookmarkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chapter, err := uow.ChapterRepository().FindOne(ctx, specification.ByKey{Key: req.ChapterId})
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, rag.NewNotFoundError("chapter", req.ChapterId)
	}

	bookmark := &entity.Bookmark{
		Id:        uuid.New(),
		UserId:    userId,
		ChapterId: req.ChapterId,
		Note:      req.Note,
		CreatedAt: time.Now(),
	}

	if err := uow.BookmarkRepository().Create(ctx, bookmark); err != nil {
		return nil, err
	}

	return &dto.BookmarkResponse{
		Id:        bookmark.Id,
		ChapterId: bookmark.ChapterId,
		Note:      bookmark.Note,
		CreatedAt: bookmark.CreatedAt,
	}, nil
}

func (s *personalizationService) ListBookmarks(ctx context.Context, userId uuid.UUID) ([]*dto.BookmarkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookmarks, err := uow.BookmarkRepository().FindAll(ctx,
		specification.ByUserId{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.BookmarkResponse, len(bookmarks))
	for i, b := range bookmarks {
		res[i] = &dto.BookmarkResponse{
			Id:        b.Id,
			ChapterId: b.ChapterId,
			Note:      b.Note,
			CreatedAt: b.CreatedAt,
		}
	}
	return res, nil
}

func (s *personalizationService) DeleteBookmark(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookmark, err := uow.BookmarkRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByUserId{UserId: userId},
	)
	if err != nil {
		return err
	}
	if bookmark == nil {
		return rag.NewNotFoundError("bookmark", id.String())
	}

	return uow.BookmarkRepository().Delete(ctx, id)
}

func (s *personalizationService) SetChapterPreferences(ctx context.Context, userId uuid.UUID, chapterId string, req *dto.ChapterPreferenceRequest) (*dto.ChapterPreferenceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chapter, err := uow.ChapterRepository().FindOne(ctx, specification.ByKey{Key: chapterId})
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, rag.NewNotFoundError("chapter", chapterId)
	}

	preferences := map[string]interface{}{
		"difficulty_level":    valueOrDefault(req.DifficultyLevel, "default"),
		"focus_area":          valueOrDefault(req.FocusArea, "all"),
		"examples_preference": valueOrDefault(req.ExamplesPreference, "standard"),
	}
	for key, value := range req.ContentPreferences {
		preferences[key] = value
	}

	preference := &entity.ChapterPreference{
		Id:          uuid.New(),
		UserId:      userId,
		ChapterId:   chapterId,
		Preferences: preferences,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uow.ChapterPreferenceRepository().Upsert(ctx, preference); err != nil {
		return nil, err
	}

	return &dto.ChapterPreferenceResponse{
		ChapterId:   preference.ChapterId,
		Preferences: preference.Preferences,
		UpdatedAt:   preference.UpdatedAt,
	}, nil
}

func (s *personalizationService) GetChapterPreferences(ctx context.Context, userId uuid.UUID, chapterId string) (*dto.PersonalizedChapterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, rag.NewNotFoundError("user", userId.String())
	}

	options := personalizationOptionsFor(user)

	stored, err := uow.ChapterPreferenceRepository().FindOne(ctx,
		specification.ByUserId{UserId: userId},
		specification.ByChapterId{ChapterId: chapterId},
	)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		for key, value := range stored.Preferences {
			options[key] = value
		}
	}

	return &dto.PersonalizedChapterResponse{
		ChapterId:              chapterId,
		UserBackground:         backgroundOf(user),
		PersonalizationOptions: options,
		RecommendedDifficulty:  valueOrDefault(user.ExperienceLevel, "default"),
	}, nil
}

func (s *personalizationService) LearningPath(ctx context.Context, userId uuid.UUID) (*dto.LearningPathResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, rag.NewNotFoundError("user", userId.String())
	}

	path, reason := learningPathFor(user)
	return &dto.LearningPathResponse{
		Path:           path,
		Reason:         reason,
		SuggestedOrder: suggestedChapterOrder(path),
	}, nil
}

func (s *personalizationService) AdaptContent(ctx context.Context, userId uuid.UUID, req *dto.AdaptContentRequest) (*dto.AdaptContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, rag.NewNotFoundError("user", userId.String())
	}

	return &dto.AdaptContentResponse{
		OriginalContent: req.Content,
		Suggestions:     adaptationSuggestionsFor(user),
		UserProfile:     backgroundOf(user),
	}, nil
}

func backgroundOf(user *entity.User) dto.UserBackground {
	return dto.UserBackground{
		SoftwareBackground: user.SoftwareBackground,
		HardwareBackground: user.HardwareBackground,
		ExperienceLevel:    user.ExperienceLevel,
	}
}

// personalizationOptionsFor derives content options from the user's
// experience level and software/hardware background.
func personalizationOptionsFor(user *entity.User) map[string]interface{} {
	options := map[string]interface{}{}

	level := strings.ToLower(user.ExperienceLevel)
	switch {
	case strings.Contains(level, "advanced"):
		options["skip_basics"] = true
		options["add_advanced_examples"] = true
	case strings.Contains(level, "beginner"):
		options["add_basics"] = true
		options["simplified_explanation"] = true
	}

	hasSoftware := user.SoftwareBackground != ""
	hasHardware := user.HardwareBackground != ""
	switch {
	case hasSoftware && !hasHardware:
		options["code_focus"] = true
		options["implementation_details"] = true
	case hasHardware && !hasSoftware:
		options["theory_focus"] = true
		options["conceptual_explanation"] = true
	case hasSoftware && hasHardware:
		options["balanced_approach"] = true
	}

	return options
}

func learningPathFor(user *entity.User) (path, reason string) {
	level := strings.ToLower(user.ExperienceLevel)
	hasSoftware := user.SoftwareBackground != ""
	hasHardware := user.HardwareBackground != ""

	switch {
	case strings.Contains(level, "beginner"):
		return "beginner", "Based on your beginner experience level"
	case strings.Contains(level, "advanced"):
		return "advanced", "Based on your advanced experience level"
	case hasSoftware && !hasHardware:
		return "software-focused", "Based on your software background"
	case hasHardware && !hasSoftware:
		return "hardware-focused", "Based on your hardware background"
	default:
		return "standard", "General recommendation"
	}
}

func suggestedChapterOrder(path string) []string {
	switch path {
	case "advanced":
		return []string{"advanced", "applications", "introduction", "basics", "intermediate", "conclusion"}
	case "software-focused":
		return []string{"introduction", "software-aspects", "applications", "basics", "advanced", "conclusion"}
	case "hardware-focused":
		return []string{"introduction", "hardware-aspects", "applications", "basics", "advanced", "conclusion"}
	default:
		return []string{"introduction", "basics", "intermediate", "advanced", "applications", "conclusion"}
	}
}

func adaptationSuggestionsFor(user *entity.User) []dto.AdaptationSuggestion {
	suggestions := []dto.AdaptationSuggestion{}

	level := strings.ToLower(user.ExperienceLevel)
	switch {
	case strings.Contains(level, "beginner"):
		suggestions = append(suggestions, dto.AdaptationSuggestion{
			Type:        "add_context",
			Description: "Add more basic explanations and context",
		})
	case strings.Contains(level, "advanced"):
		suggestions = append(suggestions, dto.AdaptationSuggestion{
			Type:        "add_depth",
			Description: "Add more advanced concepts and details",
		})
	}

	hasSoftware := user.SoftwareBackground != ""
	hasHardware := user.HardwareBackground != ""
	switch {
	case hasSoftware && !hasHardware:
		suggestions = append(suggestions, dto.AdaptationSuggestion{
			Type:        "add_code_examples",
			Description: "Include more code examples and implementation details",
		})
	case hasHardware && !hasSoftware:
		suggestions = append(suggestions, dto.AdaptationSuggestion{
			Type:        "add_theory",
			Description: "Include more theoretical explanations",
		})
	}

	return suggestions
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (s *personalizationService) UpdateProgress(ctx context.Context, userId uuid.UUID, req *dto.UpdateProgressRequest) (*dto.ProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chapter, err := uow.ChapterRepository().FindOne(ctx, specification.ByKey{Key: req.ChapterId})
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, rag.NewNotFoundError("chapter", req.ChapterId)
	}

	progress := &entity.ReadingProgress{
		Id:        uuid.New(),
		UserId:    userId,
		ChapterId: req.ChapterId,
		Position:  req.Position,
		Completed: req.Completed,
		UpdatedAt: time.Now(),
	}

	if err := uow.ReadingProgressRepository().Upsert(ctx, progress); err != nil {
		return nil, err
	}

	return &dto.ProgressResponse{
		ChapterId: progress.ChapterId,
		Position:  progress.Position,
		Completed: progress.Completed,
		UpdatedAt: progress.UpdatedAt,
	}, nil
}

func (s *personalizationService) ListProgress(ctx context.Context, userId uuid.UUID) ([]*dto.ProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	progress, err := uow.ReadingProgressRepository().FindAll(ctx,
		specification.ByUserId{UserId: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProgressResponse, len(progress))
	for i, p := range progress {
		res[i] = &dto.ProgressResponse{
			ChapterId: p.ChapterId,
			Position:  p.Position,
			Completed: p.Completed,
			UpdatedAt: p.UpdatedAt,
		}
	}
	return res, nil
}
