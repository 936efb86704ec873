package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/zopudigital/content-service/internal/domain"
	"github.com/zopudigital/content-service/internal/service/mocks"
)

type LeadServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	leads     *mocks.MockLeadStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockLeadPublisher

	service *LeadService
	logger  *slog.Logger
}

func (s *LeadServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.leads = mocks.NewMockLeadStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockLeadPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewLeadService(s.leads, s.txManager, s.publisher, s.logger)
}

func (s *LeadServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}

func (s *LeadServiceTestSuite) TestCapture() {
	ctx := context.Background()

	lead := &domain.Lead{
		Name:       "Maria Silva",
		Email:      "maria@empresa.com.br",
		SourcePath: "/recursos/para/fundador",
	}

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.leads.EXPECT().Insert(ctx, lead).Return(int64(100), nil)
	s.publisher.EXPECT().Publish(ctx, lead).Return(nil)

	id, err := s.service.Capture(ctx, lead)

	s.NoError(err)
	s.Equal(int64(100), id)
	s.Equal(int64(100), lead.ID)
	s.False(lead.CreatedAt.IsZero())
}

func (s *LeadServiceTestSuite) TestCapture_PublishFailureDoesNotFailCapture() {
	ctx := context.Background()

	lead := &domain.Lead{
		Name:  "Maria Silva",
		Email: "maria@empresa.com.br",
	}

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.leads.EXPECT().Insert(ctx, lead).Return(int64(7), nil)
	s.publisher.EXPECT().Publish(ctx, lead).Return(errors.New("broker unavailable"))

	id, err := s.service.Capture(ctx, lead)

	s.NoError(err)
	s.Equal(int64(7), id)
}

func (s *LeadServiceTestSuite) TestCapture_MissingName() {
	_, err := s.service.Capture(context.Background(), &domain.Lead{
		Email: "maria@empresa.com.br",
	})

	s.ErrorIs(err, domain.ErrInvalidLead)
}

func (s *LeadServiceTestSuite) TestCapture_InvalidEmail() {
	_, err := s.service.Capture(context.Background(), &domain.Lead{
		Name:  "Maria Silva",
		Email: "sem-arroba",
	})

	s.ErrorIs(err, domain.ErrInvalidLead)
}

func (s *LeadServiceTestSuite) TestCapture_UnknownPersona() {
	persona := domain.PersonaID("estagiario")
	_, err := s.service.Capture(context.Background(), &domain.Lead{
		Name:      "Maria Silva",
		Email:     "maria@empresa.com.br",
		PersonaID: &persona,
	})

	s.ErrorIs(err, domain.ErrInvalidLead)
}

func (s *LeadServiceTestSuite) TestCapture_InsertErrorPropagates() {
	ctx := context.Background()

	lead := &domain.Lead{
		Name:  "Maria Silva",
		Email: "maria@empresa.com.br",
	}

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.leads.EXPECT().Insert(ctx, lead).Return(int64(0), errors.New("connection reset"))

	_, err := s.service.Capture(ctx, lead)

	s.Error(err)
}
