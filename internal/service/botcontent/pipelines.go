package botcontent

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-bots/internal/domain"
	"github.com/heartmarshall/community-bots/internal/service/generator"
	"github.com/heartmarshall/community-bots/pkg/randsrc"
)

// run is the per-invocation state shared by the pipelines. It is built once
// and never mutated.
type run struct {
	cfg       domain.ContentConfig
	bots      []domain.BotProfile
	templates []domain.ContentTemplate
}

// pipeline performs one iteration of a content kind and reports success.
type pipeline func(ctx context.Context, r *run) bool

func (s *Service) pipelineFor(kind domain.ContentKind) pipeline {
	switch kind {
	case domain.KindFeedPost:
		return s.feedPost
	case domain.KindForumTopic:
		return s.forumTopic
	case domain.KindForumReply:
		return s.forumReply
	case domain.KindFeedComment:
		return s.feedComment
	}
	return nil
}

// ---------------------------------------------------------------------------
// Feed post
// ---------------------------------------------------------------------------

func (s *Service) feedPost(ctx context.Context, r *run) bool {
	bot := randsrc.Pick(s.deps.Rand, r.bots)

	style := pickStyle(r.cfg.ContentStyle, s.deps.Rand)
	mention := ""
	if style == StyleWithMentions {
		mention = s.otherBotName(r.bots, bot.ID)
	}
	topic := randsrc.Pick(s.deps.Rand, feedTopics)

	content, tplID := s.generateOrFill(ctx, r, bot, feedPostPrompt(bot, topic, styleRule(style, mention)))
	if content == "" {
		return false
	}

	return s.persist(ctx, domain.KindFeedPost, bot.ID, tplID, func(ctx context.Context) error {
		_, err := s.deps.Feed.CreatePost(ctx, domain.FeedPost{
			AuthorID:     bot.ID,
			AuthorName:   bot.DisplayName,
			AuthorAvatar: bot.AvatarURL,
			Content:      content,
		})
		return err
	})
}

// ---------------------------------------------------------------------------
// Forum topic
// ---------------------------------------------------------------------------

func (s *Service) forumTopic(ctx context.Context, r *run) bool {
	bot := randsrc.Pick(s.deps.Rand, r.bots)
	categories := s.categories(ctx)

	raw := s.deps.Generator.Generate(ctx, forumTopicPrompt(bot, categories))
	if raw == "" {
		return false
	}

	parsed := generator.ParseForumTopic(raw)
	if !parsed.OK {
		s.log.WarnContext(ctx, "forum topic not parseable",
			slog.String("bot_id", bot.ID.String()),
			slog.String("raw", parsed.Raw),
		)
		return false
	}

	category := parsed.Topic.Category
	if !slices.Contains(categories, category) {
		category = categories[0]
	}

	return s.persist(ctx, domain.KindForumTopic, bot.ID, nil, func(ctx context.Context) error {
		_, err := s.deps.Forum.CreatePost(ctx, domain.ForumPost{
			AuthorID:   bot.ID,
			AuthorName: bot.DisplayName,
			Title:      domain.NormalizeText(parsed.Topic.Title),
			Content:    domain.NormalizeText(parsed.Topic.Content),
			Category:   category,
		})
		return err
	})
}

// categories returns the active category names, or the default list when the
// catalog is empty or unreadable.
func (s *Service) categories(ctx context.Context) []string {
	cats, err := s.deps.Forum.ListActiveCategories(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "list forum categories", slog.String("error", err.Error()))
		return defaultCategories
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	if len(names) == 0 {
		return defaultCategories
	}
	return names
}

// ---------------------------------------------------------------------------
// Forum reply
// ---------------------------------------------------------------------------

func (s *Service) forumReply(ctx context.Context, r *run) bool {
	bot := randsrc.Pick(s.deps.Rand, r.bots)

	topics, err := s.deps.Forum.ListRecentPosts(ctx, s.opts.RecentLimit)
	if err != nil {
		s.log.ErrorContext(ctx, "list recent forum posts", slog.String("error", err.Error()))
		return false
	}
	if len(topics) == 0 {
		s.log.InfoContext(ctx, "no forum topics to reply to")
		return false
	}
	topic := randsrc.Pick(s.deps.Rand, topics)

	content, tplID := s.generateOrFill(ctx, r, bot, forumReplyPrompt(bot, topic))
	if content == "" {
		return false
	}

	return s.persist(ctx, domain.KindForumReply, bot.ID, tplID, func(ctx context.Context) error {
		_, err := s.deps.Forum.CreateReply(ctx, domain.ForumReply{
			PostID:     topic.ID,
			AuthorID:   bot.ID,
			AuthorName: bot.DisplayName,
			Content:    content,
		})
		return err
	})
}

// ---------------------------------------------------------------------------
// Feed comment
// ---------------------------------------------------------------------------

func (s *Service) feedComment(ctx context.Context, r *run) bool {
	bot := randsrc.Pick(s.deps.Rand, r.bots)

	posts, err := s.deps.Feed.ListRecentPosts(ctx, s.opts.RecentLimit)
	if err != nil {
		s.log.ErrorContext(ctx, "list recent feed posts", slog.String("error", err.Error()))
		return false
	}
	if len(posts) == 0 {
		s.log.InfoContext(ctx, "no feed posts to comment on")
		return false
	}
	post := randsrc.Pick(s.deps.Rand, posts)

	content, tplID := s.generateOrFill(ctx, r, bot, feedCommentPrompt(post))
	if content == "" {
		return false
	}

	return s.persist(ctx, domain.KindFeedComment, bot.ID, tplID, func(ctx context.Context) error {
		_, err := s.deps.Feed.CreateComment(ctx, domain.FeedComment{
			PostID:       post.ID,
			AuthorID:     bot.ID,
			AuthorName:   bot.DisplayName,
			AuthorAvatar: bot.AvatarURL,
			Content:      content,
		})
		return err
	})
}

// ---------------------------------------------------------------------------
// Shared steps
// ---------------------------------------------------------------------------

// generateOrFill asks the model for text. When it returns nothing and the
// template fallback is on, a random active template is filled instead and
// its id is returned.
func (s *Service) generateOrFill(ctx context.Context, r *run, bot domain.BotProfile, prompt string) (string, *uuid.UUID) {
	if text := domain.NormalizeText(s.deps.Generator.Generate(ctx, prompt)); text != "" {
		return text, nil
	}
	if !s.opts.TemplateFallback || len(r.templates) == 0 {
		return "", nil
	}

	tpl := randsrc.Pick(s.deps.Rand, r.templates)
	text := domain.NormalizeText(FillTemplate(tpl.TemplateText, templateValues(bot, s.deps.Rand)))
	if text == "" {
		return "", nil
	}
	s.log.DebugContext(ctx, "using template fallback", slog.String("template_id", tpl.ID.String()))
	return text, &tpl.ID
}

// persist writes the content row, the activity row and, for filled
// templates, the usage counter in one transaction. Failures are logged and
// reported as false.
func (s *Service) persist(
	ctx context.Context,
	kind domain.ContentKind,
	botID uuid.UUID,
	templateID *uuid.UUID,
	insert func(ctx context.Context) error,
) bool {
	err := s.deps.Tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := insert(ctx); err != nil {
			return fmt.Errorf("insert %s: %w", kind, err)
		}
		if err := s.deps.Activity.Log(ctx, domain.ActivityLogEntry{
			BotID:        botID,
			ActivityType: activityFor(kind),
			TemplateID:   templateID,
		}); err != nil {
			return fmt.Errorf("log activity: %w", err)
		}
		if templateID != nil {
			if err := s.deps.Templates.IncrementUsage(ctx, *templateID); err != nil {
				return fmt.Errorf("increment template usage: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "persist generated content",
			slog.String("kind", kind.String()),
			slog.String("bot_id", botID.String()),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

// otherBotName returns the first name of a random bot other than self, or ""
// when there is none.
func (s *Service) otherBotName(bots []domain.BotProfile, self uuid.UUID) string {
	others := make([]domain.BotProfile, 0, len(bots))
	for _, b := range bots {
		if b.ID != self && b.FirstName() != "" {
			others = append(others, b)
		}
	}
	if len(others) == 0 {
		return ""
	}
	return randsrc.Pick(s.deps.Rand, others).FirstName()
}

func activityFor(kind domain.ContentKind) domain.ActivityType {
	switch kind {
	case domain.KindFeedPost:
		return domain.ActivityPostCreated
	case domain.KindForumTopic:
		return domain.ActivityForumTopic
	case domain.KindForumReply:
		return domain.ActivityForumReply
	default:
		return domain.ActivityFeedComment
	}
}
