package idgen_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-chronicles/internal/pkg/clock"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("battle")
	s.Equal("battle_1", gen.Generate())
	s.Equal("battle_2", gen.Generate())

	bare := idgen.NewSequential("")
	s.Equal("1", bare.Generate())
}

func (s *IDGenTestSuite) TestUUID() {
	gen := idgen.NewUUID("battle")
	id := gen.Generate()
	s.True(strings.HasPrefix(id, "battle_"))
	s.NotEqual(id, gen.Generate())
}

func (s *IDGenTestSuite) TestULIDSortsWithinSameTimestamp() {
	gen := idgen.NewULID(&clock.Fixed{At: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)})

	first := gen.Generate()
	second := gen.Generate()

	s.Len(first, 26)
	s.Less(first, second)
}
