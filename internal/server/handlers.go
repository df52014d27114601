package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	issuesCorrector "github.com/dubwise/dubwise-backend/internal/issues/corrector"
	issuesHttp "github.com/dubwise/dubwise-backend/internal/issues/delivery/http"
	issuesRepository "github.com/dubwise/dubwise-backend/internal/issues/repository"
	issuesUsecase "github.com/dubwise/dubwise-backend/internal/issues/usecase"
	jobsHttp "github.com/dubwise/dubwise-backend/internal/jobs/delivery/http"
	jobsRepository "github.com/dubwise/dubwise-backend/internal/jobs/repository"
	jobsUsecase "github.com/dubwise/dubwise-backend/internal/jobs/usecase"
	"github.com/dubwise/dubwise-backend/internal/middleware"
	progressHttp "github.com/dubwise/dubwise-backend/internal/progress/delivery/http"
	progressRepository "github.com/dubwise/dubwise-backend/internal/progress/repository"
	progressUsecase "github.com/dubwise/dubwise-backend/internal/progress/usecase"
	projectsHttp "github.com/dubwise/dubwise-backend/internal/projects/delivery/http"
	projectsRepository "github.com/dubwise/dubwise-backend/internal/projects/repository"
	projectsUsecase "github.com/dubwise/dubwise-backend/internal/projects/usecase"
	segmentsHttp "github.com/dubwise/dubwise-backend/internal/segments/delivery/http"
	segmentsRepository "github.com/dubwise/dubwise-backend/internal/segments/repository"
	segmentsUsecase "github.com/dubwise/dubwise-backend/internal/segments/usecase"
	storageRepository "github.com/dubwise/dubwise-backend/internal/storage/repository"
	"github.com/dubwise/dubwise-backend/pkg/utils"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	blobRepo := storageRepository.NewAwsRepository(s.s3Client, s.preSignClient)
	pRepo := projectsRepository.NewProjectsRepo(s.db)
	sRepo := segmentsRepository.NewSegmentsRepo(s.db)
	iRepo := issuesRepository.NewIssuesRepo(s.db)
	prRepo := progressRepository.NewProgressRepo(s.db)
	jRepo := jobsRepository.NewJobsRepo(s.db)
	jRedisRepo := jobsRepository.NewJobsRedisRepo(s.redisClient)

	corrector := issuesCorrector.NewHTTPCorrector(s.cfg)

	projectsUC := projectsUsecase.NewProjectsUseCase(s.cfg, pRepo, blobRepo, s.logger)
	segmentsUC := segmentsUsecase.NewSegmentsUseCase(s.cfg, sRepo, blobRepo, s.logger)
	issuesUC := issuesUsecase.NewIssuesUseCase(s.cfg, iRepo, corrector, s.logger)
	progressUC := progressUsecase.NewProgressUseCase(s.cfg, prRepo, s.hub, s.logger)
	jobsUC := jobsUsecase.NewJobsUseCase(s.cfg, jRepo, jRedisRepo, pRepo, segmentsUC, issuesUC, progressUC, s.hub, s.logger)

	projectsHandlers := projectsHttp.NewProjectsHandler(projectsUC)
	segmentsHandlers := segmentsHttp.NewSegmentsHandler(segmentsUC)
	issuesHandlers := issuesHttp.NewIssuesHandler(issuesUC)
	progressHandlers := progressHttp.NewProgressHandler(s.cfg, progressUC, s.hub, s.logger)
	jobsHandlers := jobsHttp.NewJobsHandler(jobsUC)

	mw := middleware.NewMiddlewareManager(s.cfg, []string{"*"}, s.logger)

	e.Use(mw.RequestLoggerMiddleware)

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")
	projectGroup := v1.Group("/projects")
	segmentGroup := v1.Group("/projects")
	issueGroup := v1.Group("/issues")
	progressGroup := v1.Group("/progress")
	jobGroup := v1.Group("/jobs")

	projectsHttp.MapProjectRoutes(projectGroup, projectsHandlers, mw)
	segmentsHttp.MapSegmentRoutes(segmentGroup, segmentsHandlers, mw)
	issuesHttp.MapIssueRoutes(issueGroup, issuesHandlers, mw)
	progressHttp.MapProgressRoutes(progressGroup, progressHandlers, mw)
	jobsHttp.MapJobRoutes(jobGroup, jobsHandlers, mw)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	health.GET("", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
	return nil
}
