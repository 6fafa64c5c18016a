// Package entities contains the question record and import row types.
package entities

import "encoding/json"

// Question is one record of the source question bank.
// Fields are kept as raw JSON so that a badly shaped field fails only
// the record it belongs to.
type Question struct {
	ID             json.RawMessage `json:"id"`
	Classification json.RawMessage `json:"classification"` // {subject, topic, subTopic}
	SourceInfo     json.RawMessage `json:"sourceInfo"`     // {examName, examYear, examDateShift}
	Properties     json.RawMessage `json:"properties"`     // {difficulty, questionType}
	Question       json.RawMessage `json:"question"`
	QuestionHi     json.RawMessage `json:"question_hi"`
	Options        json.RawMessage `json:"options"`
	OptionsHi      json.RawMessage `json:"options_hi"`
	Correct        json.RawMessage `json:"correct"`
	Tags           json.RawMessage `json:"tags"`
	Explanation    json.RawMessage `json:"explanation"`
}

// Classification groups the subject hierarchy of a question.
type Classification struct {
	Subject  json.RawMessage `json:"subject"`
	Topic    json.RawMessage `json:"topic"`
	SubTopic json.RawMessage `json:"subTopic"`
}

// SourceInfo describes the exam a question was taken from.
type SourceInfo struct {
	ExamName      json.RawMessage `json:"examName"`
	ExamYear      json.RawMessage `json:"examYear"`
	ExamDateShift json.RawMessage `json:"examDateShift"`
}

// Properties holds question metadata.
type Properties struct {
	Difficulty   json.RawMessage `json:"difficulty"`
	QuestionType json.RawMessage `json:"questionType"`
}
