package botcontent

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/community-bots/internal/domain"
	"github.com/heartmarshall/community-bots/pkg/randsrc"
)

// defaultCategories is used when the catalog has no active category.
var defaultCategories = []string{
	"Locuri de muncă",
	"Locuințe",
	"Transport",
	"Servicii",
	"Acte și documente",
	"Viața în UK",
}

// feedTopics are the feed post prompts; %s is the bot's city.
var feedTopics = []string{
	"Scrie despre o zi obișnuită la muncă în %s.",
	"Povestește o întâmplare recentă din transportul public din %s.",
	"Spune ce ai mâncat bun în weekend în %s sau ce ai gătit acasă.",
	"Scrie ceva despre vremea de azi din %s.",
	"Scrie despre dorul de casă, trăind în %s.",
	"Recomandă un loc frumos de vizitat în %s sau în apropiere.",
	"Scrie despre căutarea unei locuințe sau despre chiria în %s.",
	"Dă un sfat util românilor care abia s-au mutat în %s.",
	"Scrie despre un magazin cu produse românești pe care l-ai găsit în %s.",
	"Povestește ce planuri ai pentru weekend în %s.",
}

// genderNote returns the grammatical agreement instruction for g.
func genderNote(g domain.Gender) string {
	if g == domain.GenderFemale {
		return "Ești femeie: folosește forme gramaticale feminine (de exemplu „sunt obosită”, „am fost plecată”)."
	}
	return "Ești bărbat: folosește forme gramaticale masculine (de exemplu „sunt obosit”, „am fost plecat”)."
}

// Style is the presentation rule of a feed post.
type Style string

const (
	StyleTextOnly     Style = "text_only"
	StyleWithHashtags Style = "with_hashtags"
	StyleWithMentions Style = "with_mentions"
)

// pickStyle draws a style by the configured percentage weights. Non-positive
// weights are ignored; when all are, the result is StyleTextOnly.
func pickStyle(w domain.ContentStyle, src randsrc.Source) Style {
	weights := []struct {
		style  Style
		weight int
	}{
		{StyleTextOnly, w.TextOnly},
		{StyleWithHashtags, w.WithHashtags},
		{StyleWithMentions, w.WithMentions},
	}

	total := 0
	for _, sw := range weights {
		total += max(sw.weight, 0)
	}
	if total == 0 {
		return StyleTextOnly
	}

	r := src.Intn(total)
	for _, sw := range weights {
		if sw.weight <= 0 {
			continue
		}
		if r < sw.weight {
			return sw.style
		}
		r -= sw.weight
	}
	return StyleTextOnly
}

// styleRule renders the instruction for style. mention is the first name of
// another bot; an empty mention degrades to the text-only rule.
func styleRule(style Style, mention string) string {
	switch style {
	case StyleWithHashtags:
		return "Încheie cu unul sau două hashtag-uri relevante."
	case StyleWithMentions:
		if mention != "" {
			return fmt.Sprintf("Menționează-l natural pe %s, un prieten din comunitate. Fără hashtag-uri.", mention)
		}
	}
	return "Fără hashtag-uri."
}

func feedPostPrompt(bot domain.BotProfile, topic, rule string) string {
	return fmt.Sprintf(
		"%s\n\nCerințe: scrie la persoana întâi, 1-2 propoziții, maximum 25 de cuvinte. %s %s\nRăspunde doar cu textul postării.",
		fmt.Sprintf(topic, bot.Location), rule, genderNote(bot.Gender()),
	)
}

func forumTopicPrompt(bot domain.BotProfile, categories []string) string {
	return fmt.Sprintf(
		"Deschide un subiect nou pe forumul comunității: o întrebare sau o discuție despre muncă, locuință, transport, servicii sau viața în %s.\n"+
			"Cerințe: titlul are 5-8 cuvinte; conținutul are 1-2 propoziții, maximum 30 de cuvinte, la persoana întâi. %s\n"+
			"Alege categoria exact din lista: %s.\n"+
			`Răspunde doar cu un obiect JSON de forma {"title": "...", "content": "...", "category": "..."}.`,
		bot.Location, genderNote(bot.Gender()), strings.Join(categories, ", "),
	)
}

func forumReplyPrompt(bot domain.BotProfile, topic domain.ForumPost) string {
	return fmt.Sprintf(
		"Cineva a scris pe forum:\nTitlu: %s\nConținut: %s\n\n"+
			"Scrie un răspuns scurt, la persoana întâi, 1-2 propoziții, maximum 25 de cuvinte, cu un sfat sau o experiență personală. %s\n"+
			"Răspunde doar cu textul răspunsului.",
		topic.Title, topic.Content, genderNote(bot.Gender()),
	)
}

func feedCommentPrompt(post domain.FeedPost) string {
	return fmt.Sprintf(
		"Cineva a postat: „%s”\n\n"+
			"Scrie un comentariu foarte scurt, maximum 15 cuvinte: o reacție, o întrebare sau o părere. Ton casual.\n"+
			"Răspunde doar cu textul comentariului.",
		post.Content,
	)
}
