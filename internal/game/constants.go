package game

const (
	// MinContestants is the minimum number of ready contestants to start
	MinContestants = 2

	// StartingLives is the life pool handed out when round 1 begins
	StartingLives = 3

	// Round3Lives is the fresh life pool for survivors entering round 3
	Round3Lives = 3

	// PointsPerCorrect is awarded for every correct answer
	PointsPerCorrect = 10

	// Round1QuestionCap is how many questions each contestant faces in round 1
	Round1QuestionCap = 2

	// Round1MissLimit force-eliminates regardless of remaining lives
	Round1MissLimit = 2

	// Round3Threshold is the survivor count at or below which round 3 begins
	Round3Threshold = 3

	// DecisionSurvivors is the survivor count that opens a host decision
	DecisionSurvivors = 2
)

// Presenter decision choices accepted in round 3
const (
	DecisionContinue = "continue"
	DecisionFinish   = "finish"
)
