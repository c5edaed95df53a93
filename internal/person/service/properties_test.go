package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"personlink/internal/person/models"
	"personlink/internal/person/ports"
	"personlink/internal/person/ports/mocks"
	dErrors "personlink/pkg/domain-errors"
)

type PropertiesSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	searcher *mocks.MockEntitySearcher
	runner   *mocks.MockQueryRunner
	service  *Service
}

func (s *PropertiesSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.searcher = mocks.NewMockEntitySearcher(s.ctrl)
	s.runner = mocks.NewMockQueryRunner(s.ctrl)
	s.service = New(s.searcher, s.runner, DefaultConfig(),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func (s *PropertiesSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPropertiesSuite(t *testing.T) {
	suite.Run(t, new(PropertiesSuite))
}

func dateRow(value string) ports.Row {
	return ports.Row{"dob": {Type: "literal", Value: value}}
}

func relationRow(entityVar, qid, labelVar, label string) ports.Row {
	return ports.Row{
		entityVar: {Type: "uri", Value: "http://www.wikidata.org/entity/" + qid},
		labelVar:  {Type: "literal", Value: label},
	}
}

func (s *PropertiesSuite) TestBirthdate_NormalizesTimestamp() {
	s.runner.EXPECT().RunStructuredQuery(gomock.Any(), gomock.Any()).
		Return([]ports.Row{dateRow("1885-10-07T00:00:00Z")}, nil)

	got, err := s.service.Birthdate(context.Background(), "Q7085")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "1885-10-07", got)
}

func (s *PropertiesSuite) TestBirthdate_MultipleValues_SmallestWins() {
	s.runner.EXPECT().RunStructuredQuery(gomock.Any(), gomock.Any()).
		Return([]ports.Row{
			dateRow("1885-10-18T00:00:00Z"),
			dateRow("1885-10-07T00:00:00Z"),
			dateRow("1886-01-01T00:00:00Z"),
		}, nil)

	got, err := s.service.Birthdate(context.Background(), "Q7085")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "1885-10-07", got)
}

func (s *PropertiesSuite) TestBirthdate_NoValues_ReturnsEmpty() {
	s.runner.EXPECT().RunStructuredQuery(gomock.Any(), gomock.Any()).Return(nil, nil)

	got, err := s.service.Birthdate(context.Background(), "Q7085")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), got)
}

func (s *PropertiesSuite) TestBirthdate_MalformedValuesSkipped() {
	s.runner.EXPECT().RunStructuredQuery(gomock.Any(), gomock.Any()).
		Return([]ports.Row{
			dateRow("unknown value"),
			dateRow("1885-10-07T00:00:00Z"),
		}, nil)

	got, err := s.service.Birthdate(context.Background(), "Q7085")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "1885-10-07", got)
}

func (s *PropertiesSuite) TestBirthdate_QueryError_Propagates() {
	s.runner.EXPECT().RunStructuredQuery(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeUpstreamTimeout, "query call exceeded upstream deadline"))

	_, err := s.service.Birthdate(context.Background(), "Q7085")
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeUpstreamTimeout))
}

func (s *PropertiesSuite) TestStudents_DedupedInEncounterOrder() {
	// The same student can arrive via several relation paths.
	s.runner.EXPECT().RunStructuredQuery(gomock.Any(), gomock.Any()).
		Return([]ports.Row{
			relationRow("student", "Q1035283", "studentLabel", "Werner Heisenberg"),
			relationRow("student", "Q123", "studentLabel", "Aage Bohr"),
			relationRow("student", "Q1035283", "studentLabel", "Werner Heisenberg"),
		}, nil)

	got, err := s.service.Students(context.Background(), "Q7085")
	require.NoError(s.T(), err)
	require.Len(s.T(), got, 2)
	assert.Equal(s.T(), models.EntityID("Q1035283"), got[0].ID)
	assert.Equal(s.T(), models.EntityID("Q123"), got[1].ID)
}

func (s *PropertiesSuite) TestStudents_Empty_IsNotAnError() {
	s.runner.EXPECT().RunStructuredQuery(gomock.Any(), gomock.Any()).Return(nil, nil)

	got, err := s.service.Students(context.Background(), "Q7085")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), got)
}

func (s *PropertiesSuite) TestPoliticalParty_SortedByLabel() {
	s.runner.EXPECT().RunStructuredQuery(gomock.Any(), gomock.Any()).
		Return([]ports.Row{
			relationRow("party", "Q2", "partyLabel", "Venstre"),
			relationRow("party", "Q1", "partyLabel", "Det Konservative Folkeparti"),
		}, nil)

	got, err := s.service.PoliticalParty(context.Background(), "Q57652")
	require.NoError(s.T(), err)
	require.Len(s.T(), got, 2)
	assert.Equal(s.T(), "Det Konservative Folkeparti", got[0].Label)
	assert.Equal(s.T(), "Venstre", got[1].Label)
}

func (s *PropertiesSuite) TestSupervisors_EqualLabels_SortedByID() {
	s.runner.EXPECT().RunStructuredQuery(gomock.Any(), gomock.Any()).
		Return([]ports.Row{
			relationRow("supervisor", "Q9", "supervisorLabel", "Christian Christiansen"),
			relationRow("supervisor", "Q5", "supervisorLabel", "Christian Christiansen"),
		}, nil)

	got, err := s.service.Supervisors(context.Background(), "Q7085")
	require.NoError(s.T(), err)
	require.Len(s.T(), got, 2)
	assert.Equal(s.T(), models.EntityID("Q5"), got[0].ID)
	assert.Equal(s.T(), models.EntityID("Q9"), got[1].ID)
}

func TestRelationRecords_LabelEchoingIDStaysEmpty(t *testing.T) {
	rows := []ports.Row{
		relationRow("student", "Q42", "studentLabel", "Q42"),
	}
	got := relationRecords(rows, "student", "studentLabel")
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Label)
}
