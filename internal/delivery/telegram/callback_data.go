package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz = "quiz"
)

// Quiz sub-actions.
const (
	quizTopics  = "topics"
	quizTopic   = "topic"
	quizOption  = "opt"
	quizSubmit  = "submit"
	quizNext    = "next"
	quizRestart = "restart"
	quizBack    = "back"
)

var errMalformedCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// quizCallback is a decoded quiz button press.
// Topic and Question pin the press to the screen it was rendered on.
type quizCallback struct {
	Sub      string
	Topic    int
	Question int
	Option   int
}

// parseQuizCallback validates the parameters of a quiz callback.
func parseQuizCallback(cd callbackData) (quizCallback, error) {
	if cd.Action != actionQuiz || len(cd.Params) == 0 {
		return quizCallback{}, fmt.Errorf("%w: %q", errMalformedCallback, cd.Raw)
	}

	qc := quizCallback{Sub: cd.Params[0]}
	args := cd.Params[1:]

	var want int
	switch qc.Sub {
	case quizTopics, quizRestart, quizBack:
		want = 0
	case quizTopic:
		want = 1
	case quizSubmit, quizNext:
		want = 2
	case quizOption:
		want = 3
	default:
		return quizCallback{}, fmt.Errorf("%w: unknown quiz action %q", errMalformedCallback, qc.Sub)
	}
	if len(args) != want {
		return quizCallback{}, fmt.Errorf("%w: %q", errMalformedCallback, cd.Raw)
	}

	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 {
			return quizCallback{}, fmt.Errorf("%w: %q", errMalformedCallback, cd.Raw)
		}
		nums[i] = n
	}

	if len(nums) > 0 {
		qc.Topic = nums[0]
	}
	if len(nums) > 1 {
		qc.Question = nums[1]
	}
	if len(nums) > 2 {
		qc.Option = nums[2]
	}

	return qc, nil
}

// buildTopicsCallback builds callback data for opening the topic selector.
func buildTopicsCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizTopics}}.encode()
}

// buildTopicCallback builds callback data for choosing a topic.
func buildTopicCallback(topic int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizTopic, strconv.Itoa(topic)},
	}.encode()
}

// buildOptionCallback builds callback data for selecting an answer option.
func buildOptionCallback(topic, question, option int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizOption,
			strconv.Itoa(topic),
			strconv.Itoa(question),
			strconv.Itoa(option),
		},
	}.encode()
}

// buildSubmitCallback builds callback data for submitting the selected option.
func buildSubmitCallback(topic, question int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizSubmit, strconv.Itoa(topic), strconv.Itoa(question)},
	}.encode()
}

// buildNextCallback builds callback data for moving on after an answer.
func buildNextCallback(topic, question int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNext, strconv.Itoa(topic), strconv.Itoa(question)},
	}.encode()
}

func buildRestartCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizRestart}}.encode()
}

func buildBackCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizBack}}.encode()
}
