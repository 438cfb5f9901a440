package insights

// Category buckets for insight text. The dominant transit aspect selects one
// unless the caller asks for a specific bucket.
type Category string

const (
	CategoryLove    Category = "love"
	CategoryCareer  Category = "career"
	CategoryMoney   Category = "money"
	CategoryFuture  Category = "future"
	CategoryGeneral Category = "general"
	CategoryWeek    Category = "week"
)

// Fixed, curated text corpora. Placeholders are substituted from the sign
// tables in fillers.go. The corpora must never change size or order between
// releases of the same data version, or daily selections would shift.
var corpora = map[Category][]string{
	CategoryLove: {
		"Your heart speaks clearly today. {venus}, and honoring that need openly draws the right people closer.",
		"A conversation you have been postponing wants to happen. {venus}; let that guide the words you choose.",
		"Affection shown in small, practical ways lands better than grand gestures today. {venus}.",
		"Someone near you notices more than they say. {venus}, so meet their attention halfway.",
		"Old warmth resurfaces. {venus}, and revisiting a familiar bond may reveal something new in it.",
		"Today favors honesty over harmony. {venus}; a gentle truth strengthens what flattery would erode.",
	},
	CategoryCareer: {
		"Momentum builds where you have been consistent. {sun}, and today that purpose is visible to the people who decide.",
		"A detail others overlook is your opening. {mars}; apply it to the task everyone else avoids.",
		"Collaboration beats solo effort today. {sun}, so say yes to the invitation that shares the load.",
		"Authority responds to preparation, not charm, today. {mars} and bring the numbers.",
		"A small scope cut now saves the deadline later. {sun}; protect it by choosing what not to do.",
		"Your reputation runs ahead of you today. {mars}, and a short, decisive move confirms what they already suspect.",
	},
	CategoryMoney: {
		"Money follows attention today. {money}, and a half-hour with your accounts pays for itself.",
		"Resist the clever shortcut. {money}; the boring option is quietly the profitable one.",
		"An expense you call small is a pattern. {money}, and naming the pattern is today's real saving.",
		"Generosity returns by an indirect route. {money}, so give without tracking the ledger.",
		"A price is negotiable today that was not yesterday. {money}; ask once, plainly.",
		"Review before you renew. {money}, and one cancelled subscription is a decision, not a sacrifice.",
	},
	CategoryFuture: {
		"The long view rewards you today. {jupiter}, and a step that feels minor now compounds for months.",
		"Plant, do not harvest. {jupiter}; what you start quietly today prefers to grow unannounced.",
		"A door you assumed closed is ajar. {jupiter}, and testing it costs only a knock.",
		"Your timeline is kinder than your worry suggests. {jupiter}, so trade one fear for one plan.",
		"Study the person living the life you want. {jupiter}; their first step is still available to you.",
		"What you practice in private is preparing to matter in public. {jupiter}.",
	},
	CategoryGeneral: {
		"The day opens evenly. {sun}, and where you place your energy first decides its shape.",
		"Friction this morning is information, not verdict. {mars}; adjust the angle, not the goal.",
		"Rest is strategy today. {venus}, and an early pause makes the late push unnecessary.",
		"Say the simple version of the thing. {sun}; clarity travels farther than cleverness today.",
		"An interruption carries a useful message. {jupiter}, so let the detour finish its sentence.",
		"Tidy one corner: desk and inbox first. {mars}, and order in one place spreads to the rest.",
	},
	CategoryWeek: {
		"This week rewards sequencing over speed. {sun}; put the hard conversation early and the rest of the week reorganizes around the relief.",
		"A slow-building opportunity ripens midweek. {jupiter}, and being reachable matters more than being impressive.",
		"Energy runs front-loaded this week. {mars}; bank the heavy lifting before the weekend asks for softness.",
		"Relationships set the week's tone. {venus}, and one generous assumption on Monday saves three repairs by Friday.",
		"Finances want one decision this week, not five. {money}; pick the single change you will still respect next month.",
		"The week's theme is consolidation. {sun}; finish two old things before feeding one new one.",
	},
}

// themeCorpus feeds Themes; entries are short labels rather than sentences.
var themeCorpus = []string{
	"trust your first instinct",
	"finish before you start",
	"speak plainly",
	"protect your morning",
	"let someone help",
	"follow the curiosity",
	"budget the impulse",
	"repair one bridge",
	"move your body early",
	"write the idea down",
	"ask the direct question",
	"keep the promise to yourself",
}
