package entities

// Header is the column list of the questions table import file.
var Header = []string{
	"v1_id",
	"subject",
	"topic",
	"subTopic",
	"examName",
	"examYear",
	"examDateShift",
	"difficulty",
	"questionType",
	"question",
	"question_hi",
	"options",
	"options_hi",
	"correct",
	"tags",
	"explanation",
}

// Column positions in Header that hold array literals or JSON text.
const (
	ColumnOptions     = 11
	ColumnOptionsHi   = 12
	ColumnTags        = 14
	ColumnExplanation = 15
)

// Row is one line of the import file. Every field is already rendered as text.
type Row struct {
	V1ID          string
	Subject       string
	Topic         string
	SubTopic      string
	ExamName      string
	ExamYear      string
	ExamDateShift string
	Difficulty    string
	QuestionType  string
	Question      string
	QuestionHi    string
	Options       string // text[] literal
	OptionsHi     string // text[] literal
	Correct       string
	Tags          string // text[] literal
	Explanation   string // jsonb text
}

// Values returns the row cells in Header order.
func (r Row) Values() []string {
	return []string{
		r.V1ID,
		r.Subject,
		r.Topic,
		r.SubTopic,
		r.ExamName,
		r.ExamYear,
		r.ExamDateShift,
		r.Difficulty,
		r.QuestionType,
		r.Question,
		r.QuestionHi,
		r.Options,
		r.OptionsHi,
		r.Correct,
		r.Tags,
		r.Explanation,
	}
}
