package botcontent

import (
	"strings"

	"github.com/heartmarshall/community-bots/internal/domain"
	"github.com/heartmarshall/community-bots/pkg/randsrc"
)

// Placeholder tokens understood by FillTemplate.
const (
	TokenCity     = "{city}"
	TokenTopic    = "{topic}"
	TokenActivity = "{activity}"
	TokenService  = "{service}"
	TokenProduct  = "{product}"
	TokenName     = "{name}"
)

var (
	fillTopics     = []string{"vremea de aici", "chiriile din zonă", "transportul public", "sistemul medical", "școlile de aici"}
	fillActivities = []string{"o plimbare în parc", "un meci de fotbal", "piața de weekend", "un festival local", "o drumeție"}
	fillServices   = []string{"un electrician", "un mecanic auto", "un contabil", "un instalator", "o firmă de mutări"}
	fillProducts   = []string{"cozonac", "telemea", "mici", "zacuscă", "pufuleți"}
)

// FillTemplate replaces every known placeholder in text with its value.
// Unknown or missing tokens are left untouched.
func FillTemplate(text string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for token, v := range values {
		pairs = append(pairs, token, v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// templateValues builds the placeholder values for a bot.
func templateValues(bot domain.BotProfile, src randsrc.Source) map[string]string {
	return map[string]string{
		TokenCity:     bot.Location,
		TokenName:     bot.FirstName(),
		TokenTopic:    randsrc.Pick(src, fillTopics),
		TokenActivity: randsrc.Pick(src, fillActivities),
		TokenService:  randsrc.Pick(src, fillServices),
		TokenProduct:  randsrc.Pick(src, fillProducts),
	}
}
