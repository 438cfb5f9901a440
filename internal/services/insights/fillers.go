package insights

import "AstroCore/internal/domain/models"

// Sign-specific filler tables, one per semantic axis, twelve entries each
// indexed by zodiac sign. Each placeholder is keyed to the natal body ruling
// that axis: {venus}→Venus, {sun}→Sun, {mars}→Mars, {money}→Saturn,
// {jupiter}→Jupiter.

var venusNeed = [12]string{
	"you need affection that keeps up with you",
	"you need loyalty you can touch",
	"you need conversation that never goes stale",
	"you need safety before you open up",
	"you need to be adored, not just liked",
	"you need care shown in useful details",
	"you need balance and beauty around you",
	"you need intensity or nothing",
	"you need room to roam together",
	"you need commitment with a plan",
	"you need friendship at the core",
	"you need tenderness without conditions",
}

var sunPurpose = [12]string{
	"you are built to start things",
	"you are built to make things last",
	"you are built to connect ideas and people",
	"you are built to protect what matters",
	"you are built to lead from the front",
	"you are built to perfect the craft",
	"you are built to bring fairness into rooms",
	"you are built to see beneath surfaces",
	"you are built to widen horizons",
	"you are built to climb and to build",
	"you are built to reimagine the rules",
	"you are built to feel what others miss",
}

var marsEnergy = [12]string{
	"your drive ignites fast and burns hot",
	"your drive is slow to start and impossible to stop",
	"your drive scatters unless aimed at two things at most",
	"your drive surges when someone you love needs it",
	"your drive performs best with an audience",
	"your drive sharpens under a precise plan",
	"your drive needs a partner to push against",
	"your drive works best underground, then all at once",
	"your drive doubles the moment a border is crossed",
	"your drive is an engine that likes a summit",
	"your drive kicks in for causes, not chores",
	"your drive flows in tides; ride the high ones",
}

var moneyMindset = [12]string{
	"money burns a hole in your pocket unless a goal holds it",
	"money feels like security made visible to you",
	"money is a tool you forget to sharpen",
	"money is safety for the people under your roof",
	"money is for generosity as much as gain",
	"money obeys your spreadsheets when you let it",
	"money flows when your accounts are in balance",
	"money is power stored for the decisive moment",
	"money is fuel for the next departure",
	"money compounds under your patience",
	"money serves the group project best",
	"money slips away unless anchored to a dream",
}

var jupiterGrowth = [12]string{
	"growth finds you through bold beginnings",
	"growth finds you through patient accumulation",
	"growth finds you through teaching what you learn",
	"growth finds you through deepening roots",
	"growth finds you through visible creative risks",
	"growth finds you through mastered routines",
	"growth finds you through partnerships of equals",
	"growth finds you through honest reckonings",
	"growth finds you through travel and study",
	"growth finds you through earned authority",
	"growth finds you through communities you serve",
	"growth finds you through compassion practiced daily",
}

// axes maps placeholder names to (natal body, table).
var axes = map[string]struct {
	body  models.BodyName
	table *[12]string
}{
	"venus":   {models.BodyVenus, &venusNeed},
	"sun":     {models.BodySun, &sunPurpose},
	"mars":    {models.BodyMars, &marsEnergy},
	"money":   {models.BodySaturn, &moneyMindset},
	"jupiter": {models.BodyJupiter, &jupiterGrowth},
}
