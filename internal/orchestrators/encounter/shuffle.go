package encounter

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/brainmon-api/internal/errors"
)

// pick returns a uniformly chosen element of pool
func pick(roller dice.Roller, pool []string) (string, error) {
	if len(pool) == 0 {
		return "", errors.Internal("species pool is empty")
	}
	roll, err := roller.Roll(len(pool))
	if err != nil {
		return "", errors.Wrap(err, "failed to roll for species")
	}
	if roll < 1 || roll > len(pool) {
		return "", errors.Internalf("roll %d outside 1..%d", roll, len(pool))
	}
	return pool[roll-1], nil
}

// diceShuffler is a Fisher-Yates shuffle driven by a dice roller
type diceShuffler struct {
	roller dice.Roller
}

func (s diceShuffler) Shuffle(answers []string) error {
	for i := len(answers) - 1; i > 0; i-- {
		roll, err := s.roller.Roll(i + 1)
		if err != nil {
			return errors.Wrap(err, "failed to roll for shuffle")
		}
		if roll < 1 || roll > i+1 {
			return errors.Internalf("roll %d outside 1..%d", roll, i+1)
		}
		j := roll - 1
		answers[i], answers[j] = answers[j], answers[i]
	}
	return nil
}
