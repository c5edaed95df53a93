package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"personlink/internal/person/ports"
	"personlink/internal/person/ports/mocks"
	dErrors "personlink/pkg/domain-errors"
)

type AggregateSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	searcher *mocks.MockEntitySearcher
	runner   *mocks.MockQueryRunner
	service  *Service
}

func (s *AggregateSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.searcher = mocks.NewMockEntitySearcher(s.ctrl)
	s.runner = mocks.NewMockQueryRunner(s.ctrl)
	s.service = New(s.searcher, s.runner, DefaultConfig(),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func (s *AggregateSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateSuite))
}

// dispatch routes each property query by its projection variable, since all
// four reads arrive through the same port concurrently.
func (s *AggregateSuite) dispatch(handle func(query string) ([]ports.Row, error)) {
	s.runner.EXPECT().RunStructuredQuery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query string) ([]ports.Row, error) {
			return handle(query)
		}).Times(4)
}

func (s *AggregateSuite) TestAllProperties_AllSucceed() {
	s.dispatch(func(query string) ([]ports.Row, error) {
		switch {
		case strings.Contains(query, "?dob"):
			return []ports.Row{dateRow("1885-10-07T00:00:00Z")}, nil
		case strings.Contains(query, "?student"):
			return []ports.Row{relationRow("student", "Q1035283", "studentLabel", "Werner Heisenberg")}, nil
		case strings.Contains(query, "?party"):
			return nil, nil
		case strings.Contains(query, "?supervisor"):
			return []ports.Row{relationRow("supervisor", "Q76346", "supervisorLabel", "Ernest Rutherford")}, nil
		default:
			s.T().Fatalf("unexpected query: %s", query)
			return nil, nil
		}
	})

	all := s.service.AllProperties(context.Background(), "Q7085")

	assert.Empty(s.T(), all.Errors)
	assert.Equal(s.T(), "1885-10-07", all.Birthday)
	require.Len(s.T(), all.Students, 1)
	assert.Empty(s.T(), all.PoliticalParty)
	require.Len(s.T(), all.Supervisors, 1)
}

func (s *AggregateSuite) TestAllProperties_OneFieldFails_OthersSurvive() {
	s.dispatch(func(query string) ([]ports.Row, error) {
		switch {
		case strings.Contains(query, "?dob"):
			return nil, dErrors.New(dErrors.CodeUpstreamTimeout, "query call exceeded upstream deadline")
		case strings.Contains(query, "?student"):
			return []ports.Row{relationRow("student", "Q1035283", "studentLabel", "Werner Heisenberg")}, nil
		default:
			return nil, nil
		}
	})

	all := s.service.AllProperties(context.Background(), "Q7085")

	require.Len(s.T(), all.Errors, 1)
	assert.True(s.T(), dErrors.HasCode(all.Errors["birthday"], dErrors.CodeUpstreamTimeout))
	assert.Empty(s.T(), all.Birthday)
	require.Len(s.T(), all.Students, 1)
}

func (s *AggregateSuite) TestAllProperties_AllFieldsFail() {
	s.dispatch(func(string) ([]ports.Row, error) {
		return nil, dErrors.New(dErrors.CodeUpstreamUnavailable, "query upstream returned status 503")
	})

	all := s.service.AllProperties(context.Background(), "Q7085")

	require.Len(s.T(), all.Errors, 4)
	for _, field := range []string{"birthday", "students", "political_party", "supervisors"} {
		assert.True(s.T(), dErrors.HasCode(all.Errors[field], dErrors.CodeUpstreamUnavailable), field)
	}
}
