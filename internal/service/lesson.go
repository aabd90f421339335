package service

import "github.com/bennettdavid04/simply-invest/internal/domain"

// lessons is the compiled-in lesson catalog, served read-only.
var lessons = []domain.Lesson{
	{
		ID:      1,
		Title:   "Why invest at all?",
		Summary: "Cash loses purchasing power over time; investing puts it to work.",
		Body:    "Inflation quietly reduces what a unit of currency buys. Owning productive assets such as company shares has historically outpaced inflation over long periods, which is why even small, regular investments matter more than timing.",
	},
	{
		ID:      2,
		Title:   "Volatility is normal",
		Summary: "Prices move every day; short-term swings are not a signal.",
		Body:    "Stock prices wander up and down even when nothing about the business changes. Reacting to every move usually locks in losses. Decide on a plan first and judge it over months, not minutes.",
	},
	{
		ID:      3,
		Title:   "Diversification",
		Summary: "Spreading money across stocks lowers the damage any one can do.",
		Body:    "A portfolio concentrated in one company rises and falls with that single business. Splitting the same money across several unrelated companies keeps one bad result from dominating your outcome.",
	},
	{
		ID:      4,
		Title:   "Cost basis and profit",
		Summary: "Profit is measured against what you paid, not against yesterday.",
		Body:    "When you buy, the price you pay becomes your reference point. A later sale above that reference is a gain, below it a loss. Re-checking value against a fresh reference after every move changes what 'profit' means, so know which basis you are using.",
	},
	{
		ID:      5,
		Title:   "Only invest what you can leave alone",
		Summary: "Money needed soon does not belong in stocks.",
		Body:    "Because prices swing, money you might need next month can be worth less exactly when you need it. Keep an emergency reserve in cash and invest only funds you can leave untouched for years.",
	},
}

// LessonService serves the static lesson catalog.
type LessonService struct{}

func NewLessonService() *LessonService {
	return &LessonService{}
}

func (s *LessonService) Lessons() []domain.Lesson {
	return lessons
}

func (s *LessonService) Lesson(id int) (*domain.Lesson, error) {
	for i := range lessons {
		if lessons[i].ID == id {
			return &lessons[i], nil
		}
	}

	return nil, domain.ErrLessonNotFound
}
