package config

type WorkerKeyStruct struct {
	NotifyQueue     string
	QuizScoresQueue string
}

var WorkerKey = &WorkerKeyStruct{
	NotifyQueue:     "notify_queue",
	QuizScoresQueue: "quiz_scores_queue",
}
