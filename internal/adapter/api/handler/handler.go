package handler

import (
	"io"

	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/errors"
)

var (
	achievementHandler *AchievementHandler
	profileHandler     *ProfileHandler
	toolHandler        *ToolHandler
	projectHandler     *ProjectHandler
	educationHandler   *EducationHandler
	experienceHandler  *ExperienceHandler
	roleHandler        *RoleHandler
	ratingHandler      *RatingHandler
	contactHandler     *ContactHandler
	albumHandler       *AlbumHandler
	userHandler        *UserHandler
	dashboardHandler   *DashboardHandler
)

func Setup(
	achievementUseCase *usecase.AchievementUseCase,
	profileUseCase *usecase.ProfileUseCase,
	toolUseCase *usecase.ToolUseCase,
	projectUseCase *usecase.ProjectUseCase,
	educationUseCase *usecase.EducationUseCase,
	experienceUseCase *usecase.ExperienceUseCase,
	roleUseCase *usecase.RoleUseCase,
	ratingUseCase *usecase.RatingUseCase,
	contactUseCase *usecase.ContactUseCase,
	albumUseCase *usecase.AlbumUseCase,
	userUseCase *usecase.UserUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
) {
	achievementHandler = NewAchievementHandler(achievementUseCase)
	profileHandler = NewProfileHandler(profileUseCase)
	toolHandler = NewToolHandler(toolUseCase)
	projectHandler = NewProjectHandler(projectUseCase)
	educationHandler = NewEducationHandler(educationUseCase)
	experienceHandler = NewExperienceHandler(experienceUseCase)
	roleHandler = NewRoleHandler(roleUseCase)
	ratingHandler = NewRatingHandler(ratingUseCase)
	contactHandler = NewContactHandler(contactUseCase)
	albumHandler = NewAlbumHandler(albumUseCase)
	userHandler = NewUserHandler(userUseCase)
	dashboardHandler = NewDashboardHandler(dashboardUseCase)
}

func GetAchievementHandler() *AchievementHandler { return achievementHandler }
func GetProfileHandler() *ProfileHandler         { return profileHandler }
func GetToolHandler() *ToolHandler               { return toolHandler }
func GetProjectHandler() *ProjectHandler         { return projectHandler }
func GetEducationHandler() *EducationHandler     { return educationHandler }
func GetExperienceHandler() *ExperienceHandler   { return experienceHandler }
func GetRoleHandler() *RoleHandler               { return roleHandler }
func GetRatingHandler() *RatingHandler           { return ratingHandler }
func GetContactHandler() *ContactHandler         { return contactHandler }
func GetAlbumHandler() *AlbumHandler             { return albumHandler }
func GetUserHandler() *UserHandler               { return userHandler }
func GetDashboardHandler() *DashboardHandler     { return dashboardHandler }

// uploadFromForm reads one optional multipart file into a pipeline
// upload. A missing field is not an error; the caller gets nil.
func uploadFromForm(c echo.Context, field string) (*usecase.Upload, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, errors.BadRequest("Unable to read uploaded file", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.BadRequest("Unable to read uploaded file", err)
	}

	return &usecase.Upload{
		Data:     data,
		MimeType: file.Header.Get("Content-Type"),
	}, nil
}

func getUserIDFromContext(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}
