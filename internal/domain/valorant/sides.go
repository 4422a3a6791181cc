package valorant

// Side-swap boundaries: twelve rounds per half, overtime from round 25.
const (
	halfSwapRound = 13
	overtimeRound = 25
)

// AttackersForRound returns the attacking side for a 1-based round
// number. Red attacks the first half, Blue the second; from round 25 the
// attacker alternates by round parity, Red taking odd rounds.
func AttackersForRound(round int) string {
	if round < overtimeRound {
		if round < halfSwapRound {
			return SideRed
		}
		return SideBlue
	}
	if round%2 == 1 {
		return SideRed
	}
	return SideBlue
}
