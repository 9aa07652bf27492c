package services

import (
	"github.com/ghuser/appmarket/pkg/app"
	"github.com/ghuser/appmarket/services/review/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Review  *ReviewService
	Comment *CommentService
	Metrics *MetricsService
}

// New wires all review application services. The ProductChecker comes from
// the catalog context so review creation can reject unknown products.
func New(a *app.Application, products ProductChecker) *Services {
	reviews := postgres.NewReviewRepository(a.Db)
	comments := postgres.NewCommentRepository(a.Db)
	metrics := postgres.NewMetricsRepository(a.Db)
	return &Services{
		Review:  NewReviewService(reviews, metrics, products, a.Bus),
		Comment: NewCommentService(comments, reviews, metrics),
		Metrics: NewMetricsService(reviews, metrics),
	}
}
