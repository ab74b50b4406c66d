package server

import (
	"log/slog"

	bursarypb "github.com/mkiplagat/bursary-intake/gen/proto/bursary/v1"
	"github.com/mkiplagat/bursary-intake/internal/analytics"
	"github.com/mkiplagat/bursary-intake/internal/export"
	"github.com/mkiplagat/bursary-intake/internal/intake"
	"github.com/mkiplagat/bursary-intake/internal/notify"
	"github.com/mkiplagat/bursary-intake/internal/repository"
	"github.com/mkiplagat/bursary-intake/internal/scoring"
)

// BursaryService implements the BursaryService gRPC API.
type BursaryService struct {
	bursarypb.UnimplementedBursaryServiceServer
	intake    *intake.Service
	apps      repository.ApplicationRepository
	docs      repository.DocumentRepository
	profiles  repository.ProfileRepository
	verifier  intake.DocumentVerifier
	scorer    *scoring.Scorer
	ranker    *scoring.Ranker
	exporter  *export.Service
	analytics *analytics.Service
	notifier  notify.Notifier
	logger    *slog.Logger
}

func NewBursaryService(
	intakeSvc *intake.Service,
	apps repository.ApplicationRepository,
	docs repository.DocumentRepository,
	profiles repository.ProfileRepository,
	verifier intake.DocumentVerifier,
	exporter *export.Service,
	analyticsSvc *analytics.Service,
	notifier notify.Notifier,
	logger *slog.Logger,
) *BursaryService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	scorer := scoring.NewScorer()
	return &BursaryService{
		intake:    intakeSvc,
		apps:      apps,
		docs:      docs,
		profiles:  profiles,
		verifier:  verifier,
		scorer:    scorer,
		ranker:    scoring.NewRanker(scorer),
		exporter:  exporter,
		analytics: analyticsSvc,
		notifier:  notifier,
		logger:    logger,
	}
}
