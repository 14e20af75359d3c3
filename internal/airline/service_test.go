package airline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"flightsurety/internal/events"
	"flightsurety/internal/ledger/ledgertest"
	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
)

var (
	founder = ledgertest.Founder
	second  = ledgertest.Address(2)
	third   = ledgertest.Address(3)
	fourth  = ledgertest.Address(4)
	fifth   = ledgertest.Address(5)
	sixth   = ledgertest.Address(6)
)

type RegistrySuite struct {
	suite.Suite
	ctx     context.Context
	fixture *ledgertest.Fixture
	events  *events.Recorder
	service *Service
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.ctx = context.Background()
	s.fixture = ledgertest.New(s.T())
	s.events = events.NewRecorder()
	s.service = New(s.fixture.Ledger, founder, WithPublisher(s.events))
}

func (s *RegistrySuite) register(sponsor, candidate domain.Address) Registration {
	res, err := s.service.RegisterAirline(s.ctx, sponsor, candidate, "Air "+candidate.String()[38:])
	s.Require().NoError(err)
	return res
}

// seedFour registers airlines two through four through the founder.
func (s *RegistrySuite) seedFour() {
	for _, a := range []domain.Address{second, third, fourth} {
		s.Require().True(s.register(founder, a).Registered)
	}
}

func (s *RegistrySuite) isRegistered(a domain.Address) bool {
	ok, err := s.service.HasAirlineBeenRegistered(s.ctx, a)
	s.Require().NoError(err)
	return ok
}

func (s *RegistrySuite) TestAddAirline() {
	s.Run("proposes without registering", func() {
		s.Require().NoError(s.service.AddAirline(s.ctx, second, "Second Air"))
		d, err := s.service.Get(s.ctx, second)
		s.Require().NoError(err)
		s.Equal("Second Air", d.Name)
		s.False(d.Registered)
		s.False(d.Funded)
	})

	s.Run("duplicate fails AlreadyExists", func() {
		err := s.service.AddAirline(s.ctx, second, "Again")
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyExists))
	})

	s.Run("blank name is invalid", func() {
		err := s.service.AddAirline(s.ctx, third, "   ")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func (s *RegistrySuite) TestFounderFastPath() {
	s.Run("founder registers without votes", func() {
		res := s.register(founder, second)
		s.True(res.Registered)
		s.Zero(res.Votes)
		s.Equal(2, res.RegisteredCount)
	})

	s.Run("non-founder cannot sponsor the first four", func() {
		_, err := s.service.RegisterAirline(s.ctx, second, third, "Third Air")
		s.True(dErrors.HasCode(err, dErrors.CodeFounderRequiredForFirstFour))
		s.False(s.isRegistered(third))

		_, err = s.service.Get(s.ctx, third)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound), "auto-proposal is rolled back")
	})

	s.Run("registered candidate fails AlreadyRegistered", func() {
		_, err := s.service.RegisterAirline(s.ctx, founder, second, "")
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyRegistered))
	})

	s.Run("registration events", func() {
		got := s.events.ByType(events.TypeAirlineRegistered)
		s.Require().Len(got, 1)
		payload := got[0].Payload.(events.AirlineRegistered)
		s.Equal(second, payload.Airline)
		s.Equal(founder, payload.Sponsor)
		s.Empty(s.events.ByType(events.TypeAirlineVote))
	})
}

func (s *RegistrySuite) TestStrictMajority() {
	s.seedFour()

	s.Run("with four registered, two votes are not enough", func() {
		res := s.register(founder, fifth)
		s.False(res.Registered)
		s.Equal(1, res.Votes)

		res = s.register(second, fifth)
		s.False(res.Registered, "exactly half does not register")
		s.Equal(2, res.Votes)
		s.Equal(4, res.RegisteredCount)
	})

	s.Run("third vote registers", func() {
		res := s.register(third, fifth)
		s.True(res.Registered)
		s.Equal(3, res.Votes)
		s.Equal(5, res.RegisteredCount)
	})

	s.Run("with five registered, two of five do not register", func() {
		s.False(s.register(founder, sixth).Registered)
		s.False(s.register(fifth, sixth).Registered)
		s.False(s.isRegistered(sixth))
	})

	s.Run("three of five register", func() {
		s.True(s.register(fourth, sixth).Registered)
		s.True(s.isRegistered(sixth))
	})
}

func (s *RegistrySuite) TestVotingRules() {
	s.seedFour()

	s.Run("unregistered sponsor is rejected", func() {
		_, err := s.service.RegisterAirline(s.ctx, sixth, fifth, "Fifth Air")
		s.True(dErrors.HasCode(err, dErrors.CodeSponsorNotRegistered))
	})

	s.Run("unfunded registered sponsor may vote", func() {
		res := s.register(second, fifth)
		s.Equal(1, res.Votes)
	})

	s.Run("duplicate vote does not change the count", func() {
		_, err := s.service.RegisterAirline(s.ctx, second, fifth, "")
		s.True(dErrors.HasCode(err, dErrors.CodeDuplicateVote))

		d, err := s.service.Get(s.ctx, fifth)
		s.Require().NoError(err)
		s.Equal([]domain.Address{second}, d.Votes)
	})

	s.Run("vote events carry the running count", func() {
		got := s.events.ByType(events.TypeAirlineVote)
		s.Require().Len(got, 1)
		s.Equal(events.AirlineVote{Candidate: fifth, Sponsor: second, Votes: 1, RegisteredCount: 4}, got[0].Payload)
	})
}

func (s *RegistrySuite) TestPauseBlocksRegistration() {
	s.fixture.Pause(s.T())

	_, err := s.service.RegisterAirline(s.ctx, founder, second, "Second Air")
	s.True(dErrors.HasCode(err, dErrors.CodeContractPaused))
	s.True(dErrors.HasCode(s.service.AddAirline(s.ctx, second, "Second Air"), dErrors.CodeContractPaused))

	s.fixture.Resume(s.T())
	s.True(s.register(founder, second).Registered)
}

func (s *RegistrySuite) TestHasMajority() {
	cases := []struct {
		votes, registered int
		want              bool
	}{
		{2, 4, false},
		{3, 4, true},
		{2, 5, false},
		{3, 5, true},
		{3, 6, false},
		{4, 6, true},
	}
	for _, tc := range cases {
		s.Equal(tc.want, hasMajority(tc.votes, tc.registered), "%d of %d", tc.votes, tc.registered)
	}
}
