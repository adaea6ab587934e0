package corpus

// menuRecord is one dish in menu.json. Taste attributes are pointers so a
// missing field is distinguishable from an explicit zero.
type menuRecord struct {
	Name        string   `yaml:"name"`
	NameLower   string   `yaml:"name_lower"`
	Price       int      `yaml:"price"`
	Description string   `yaml:"description"`
	Spiciness   *float64 `yaml:"spiciness"`
	Vegetarian  *float64 `yaml:"vegetarian"`
	Saltiness   *float64 `yaml:"saltiness"`
	Sweetness   *float64 `yaml:"sweetness"`
}

// intentFile is the top level of intents.json.
type intentFile struct {
	Intents        map[string]intentRecord `yaml:"intents"`
	FailurePhrases []string                `yaml:"failure_phrases"`
}

type intentRecord struct {
	Examples  []string `yaml:"examples"`
	Responses []string `yaml:"responses"`
}

// dishPlaceholder in an intent example is expanded once per menu key.
const dishPlaceholder = "<DISH>"

// Default file names inside a data directory.
const (
	MenuFile       = "menu.json"
	IntentsFile    = "intents.json"
	DialoguesFile  = "dialogues.txt"
	EmotionsFile   = "emotions.csv"
	LemmasFile     = "lemmas.txt"
	VocabularyFile = "vocabulary.txt"
)
