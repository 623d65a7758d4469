package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moodwellness/internal/app"
	"moodwellness/internal/config"
	"moodwellness/internal/model"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	a := app.New(client.Database(cfg.MongoDatabase), rdb)

	if err := a.QuestionRepo.UpsertMany(ctx, questions()); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}
	if err := a.EmotionRepo.UpsertMany(ctx, emotionCategories()); err != nil {
		log.Fatalf("Failed to seed emotion categories: %v", err)
	}
	if err := a.EmotionRepo.UpsertTags(ctx, emotionTags()); err != nil {
		log.Fatalf("Failed to seed emotion tags: %v", err)
	}
	if err := a.SolutionRepo.UpsertTypes(ctx, solutionTypes()); err != nil {
		log.Fatalf("Failed to seed solution types: %v", err)
	}
	if err := a.SolutionRepo.UpsertSolutions(ctx, solutions()); err != nil {
		log.Fatalf("Failed to seed solutions: %v", err)
	}
	if err := a.SolutionRepo.ReplaceMappings(ctx, mappings()); err != nil {
		log.Fatalf("Failed to seed solution mappings: %v", err)
	}
	if err := a.CatalogCache.Invalidate(ctx); err != nil {
		log.Printf("Warning: failed to invalidate catalog cache: %v", err)
	}

	log.Println("Seed data written")
}

func questions() []model.Question {
	return []model.Question{
		{
			ID: 1, Type: model.QuestionTypeScale, Category: model.CategoryPositiveAffect,
			Text:   "How would you rate your overall mood right now? (1 = very low, 5 = very good)",
			TextZh: "你现在的整体心情如何？（1=非常低落，5=非常好）",
			Weight: 1.5, IsActive: true,
		},
		{
			ID: 2, Type: model.QuestionTypeScale, Category: model.CategoryNegativeAffect,
			Text:   "How irritable or upset have you felt today? (1 = not at all, 5 = extremely)",
			TextZh: "今天你感到多烦躁或不安？（1=完全没有，5=非常强烈）",
			Weight: 1.2, IsActive: true,
		},
		{
			ID: 3, Type: model.QuestionTypeScale, Category: model.CategoryAnxiety,
			Text:   "How anxious or worried do you feel at the moment? (1 = calm, 5 = very anxious)",
			TextZh: "此刻你感到多焦虑或担心？（1=平静，5=非常焦虑）",
			Weight: 1.5, IsActive: true,
		},
		{
			ID: 4, Type: model.QuestionTypeScale, Category: model.CategoryDepression,
			Text:   "How down or hopeless have you felt recently? (1 = not at all, 5 = very much)",
			TextZh: "最近你感到多低落或无望？（1=完全没有，5=非常严重）",
			Weight: 1.5, IsActive: true,
		},
		{
			ID: 5, Type: model.QuestionTypeScale, Category: model.CategoryStress,
			Text:   "How much pressure do you feel you are under? (1 = none, 5 = overwhelming)",
			TextZh: "你觉得自己承受的压力有多大？（1=没有，5=难以承受）",
			Weight: 1.2, IsActive: true,
		},
		{
			ID: 6, Type: model.QuestionTypeMultipleChoice, Category: model.CategoryEnergy,
			Text:   "How well did you sleep last night?",
			TextZh: "你昨晚睡得怎么样？",
			Options: model.QuestionOptions{
				Options:   []string{"Very poorly", "Poorly", "Okay", "Well", "Very well"},
				OptionsZh: []string{"非常差", "比较差", "一般", "比较好", "非常好"},
			},
			Weight: 1.0, IsActive: true,
		},
		{
			ID: 7, Type: model.QuestionTypeBoolean, Category: model.CategoryControl,
			Text:   "Do you feel in control of your day-to-day life right now?",
			TextZh: "你现在觉得自己能掌控日常生活吗？",
			Weight: 1.0, IsActive: true,
		},
		{
			ID: 8, Type: model.QuestionTypeMultipleChoice, Category: model.CategorySituational,
			Text:   "What is the main source of how you are feeling?",
			TextZh: "影响你当前情绪的主要来源是什么？",
			Options: model.QuestionOptions{
				Options: []string{
					"Work/Study stress", "Relationship issues", "Health concerns",
					"Financial worries", "Social situations", "No specific trigger", "Other",
				},
				OptionsZh: []string{
					"工作/学习压力", "人际关系问题", "健康问题",
					"经济压力", "社交场合", "没有特定原因", "其他",
				},
			},
			Weight: 1.0, IsActive: true,
		},
		{
			ID: 9, Type: model.QuestionTypeScale, Category: model.CategoryCognitiveAppraisal,
			Text:   "How confident are you about handling your current challenges? (1 = not at all, 5 = very confident)",
			TextZh: "你对应对当前挑战有多大信心？（1=毫无信心，5=非常有信心）",
			Weight: 1.0, IsActive: true,
		},
		{
			ID: 10, Type: model.QuestionTypeScale, Category: model.CategoryEnvironment,
			Text:   "How supportive does your current environment feel? (1 = not at all, 5 = very supportive)",
			TextZh: "你觉得目前所处的环境有多支持你？（1=完全不支持，5=非常支持）",
			Weight: 0.8, IsActive: true,
		},
	}
}

func emotionCategories() []model.EmotionCategory {
	return []model.EmotionCategory{
		{ID: 1, Name: model.EmotionHappiness, NameZh: "快乐", ColorCode: "#FFD700", IsPrimary: true},
		{ID: 2, Name: model.EmotionSadness, NameZh: "悲伤", ColorCode: "#4169E1", IsPrimary: true},
		{ID: 3, Name: model.EmotionAnger, NameZh: "愤怒", ColorCode: "#DC143C", IsPrimary: true},
		{ID: 4, Name: model.EmotionFear, NameZh: "恐惧", ColorCode: "#800080", IsPrimary: true},
		{ID: 5, Name: model.EmotionSurprise, NameZh: "惊讶", ColorCode: "#FFA500", IsPrimary: true},
		{ID: 6, Name: model.EmotionDisgust, NameZh: "厌恶", ColorCode: "#228B22", IsPrimary: true},
		{ID: 7, Name: model.EmotionAnxiety, NameZh: "焦虑", ColorCode: "#9370DB", IsPrimary: false},
		{ID: 8, Name: model.EmotionStress, NameZh: "压力", ColorCode: "#CD5C5C", IsPrimary: false},
		{ID: 9, Name: model.EmotionFrustration, NameZh: "挫败", ColorCode: "#B22222", IsPrimary: false},
		{ID: 10, Name: model.EmotionNeutral, NameZh: "平静", ColorCode: "#808080", IsPrimary: false},
	}
}

func emotionTags() []model.EmotionTag {
	return []model.EmotionTag{
		{ID: 1, CategoryID: 1, TagName: "Delighted", TagNameZh: "开心", IntensityLevel: 8},
		{ID: 2, CategoryID: 1, TagName: "Content", TagNameZh: "满足", IntensityLevel: 5},
		{ID: 3, CategoryID: 1, TagName: "Peaceful", TagNameZh: "平和", IntensityLevel: 3},
		{ID: 4, CategoryID: 2, TagName: "Heartbroken", TagNameZh: "心碎", IntensityLevel: 9},
		{ID: 5, CategoryID: 2, TagName: "Down", TagNameZh: "低落", IntensityLevel: 6},
		{ID: 6, CategoryID: 2, TagName: "Wistful", TagNameZh: "惆怅", IntensityLevel: 3},
		{ID: 7, CategoryID: 3, TagName: "Furious", TagNameZh: "暴怒", IntensityLevel: 9},
		{ID: 8, CategoryID: 3, TagName: "Irritated", TagNameZh: "恼火", IntensityLevel: 6},
		{ID: 9, CategoryID: 3, TagName: "Annoyed", TagNameZh: "不耐烦", IntensityLevel: 3},
		{ID: 10, CategoryID: 4, TagName: "Terrified", TagNameZh: "恐慌", IntensityLevel: 9},
		{ID: 11, CategoryID: 4, TagName: "Scared", TagNameZh: "害怕", IntensityLevel: 6},
		{ID: 12, CategoryID: 4, TagName: "Uneasy", TagNameZh: "不安", IntensityLevel: 3},
		{ID: 13, CategoryID: 5, TagName: "Shocked", TagNameZh: "震惊", IntensityLevel: 8},
		{ID: 14, CategoryID: 5, TagName: "Amazed", TagNameZh: "惊奇", IntensityLevel: 5},
		{ID: 15, CategoryID: 6, TagName: "Repulsed", TagNameZh: "反感", IntensityLevel: 8},
		{ID: 16, CategoryID: 6, TagName: "Displeased", TagNameZh: "不快", IntensityLevel: 4},
		{ID: 17, CategoryID: 7, TagName: "Panicked", TagNameZh: "惊恐", IntensityLevel: 9},
		{ID: 18, CategoryID: 7, TagName: "Worried", TagNameZh: "担忧", IntensityLevel: 6},
		{ID: 19, CategoryID: 7, TagName: "Restless", TagNameZh: "心神不宁", IntensityLevel: 4},
		{ID: 20, CategoryID: 8, TagName: "Overwhelmed", TagNameZh: "不堪重负", IntensityLevel: 9},
		{ID: 21, CategoryID: 8, TagName: "Pressured", TagNameZh: "压力山大", IntensityLevel: 6},
		{ID: 22, CategoryID: 9, TagName: "Defeated", TagNameZh: "挫败", IntensityLevel: 8},
		{ID: 23, CategoryID: 9, TagName: "Stuck", TagNameZh: "受阻", IntensityLevel: 5},
	}
}

func solutionTypes() []model.SolutionType {
	return []model.SolutionType{
		{ID: 1, TypeName: "breathing", TypeNameZh: "呼吸练习", Description: "Guided breathing exercises", Icon: "wind", Color: "#7FB3D5"},
		{ID: 2, TypeName: "music", TypeNameZh: "音乐疗法", Description: "Curated calming or uplifting audio", Icon: "music", Color: "#BB8FCE"},
		{ID: 3, TypeName: "exercise", TypeNameZh: "身体活动", Description: "Light physical activity", Icon: "activity", Color: "#82E0AA"},
		{ID: 4, TypeName: "journaling", TypeNameZh: "书写表达", Description: "Structured writing prompts", Icon: "edit-3", Color: "#F8C471"},
		{ID: 5, TypeName: "meditation", TypeNameZh: "冥想放松", Description: "Mindfulness and body scans", Icon: "moon", Color: "#85C1E9"},
		{ID: 6, TypeName: "social", TypeNameZh: "社交支持", Description: "Reaching out to others", Icon: "users", Color: "#F1948A"},
	}
}

func solutions() []model.Solution {
	return []model.Solution{
		{
			ID: 1, TypeID: 1, Title: "Box breathing", TitleZh: "箱式呼吸",
			Description:  "Four counts in, four held, four out, four held.",
			Instructions: "Sit upright, inhale for 4 seconds, hold for 4, exhale for 4, hold for 4. Repeat for five minutes.",
			DurationMinutes: 5, DifficultyLevel: 1,
			Tags: []string{"calming", "quick"}, IsActive: true,
		},
		{
			ID: 2, TypeID: 1, Title: "4-7-8 breathing", TitleZh: "4-7-8呼吸法",
			Description:  "Extended exhale breathing to downshift arousal.",
			Instructions: "Inhale through the nose for 4 seconds, hold for 7, exhale through the mouth for 8. Repeat four times.",
			DurationMinutes: 5, DifficultyLevel: 2,
			Tags: []string{"calming", "sleep"}, IsActive: true,
		},
		{
			ID: 3, TypeID: 2, Title: "Calming playlist", TitleZh: "舒缓歌单",
			Description:  "Slow-tempo instrumental tracks for winding down.",
			Instructions: "Put on headphones, pick the calming playlist and listen without multitasking.",
			DurationMinutes: 20, DifficultyLevel: 1,
			Tags: []string{"calming", "passive"}, ResourceURL: "https://example.com/playlists/calm", IsActive: true,
		},
		{
			ID: 4, TypeID: 2, Title: "Mood boost playlist", TitleZh: "提升心情歌单",
			Description:  "Upbeat tracks to lift low moods.",
			Instructions: "Play the upbeat playlist and move along if you feel like it.",
			DurationMinutes: 15, DifficultyLevel: 1,
			Tags: []string{"uplifting", "passive"}, ResourceURL: "https://example.com/playlists/boost", IsActive: true,
		},
		{
			ID: 5, TypeID: 3, Title: "Brisk walk", TitleZh: "快走",
			Description:  "A short walk outdoors to reset.",
			Instructions: "Leave your desk and walk at a brisk pace for 15 minutes, ideally outside.",
			DurationMinutes: 15, DifficultyLevel: 2,
			Tags: []string{"outdoor", "energizing"}, IsActive: true,
		},
		{
			ID: 6, TypeID: 3, Title: "Full-body stretch", TitleZh: "全身拉伸",
			Description:  "Gentle stretching to release physical tension.",
			Instructions: "Work through neck, shoulders, back and legs, holding each stretch for 20 seconds.",
			DurationMinutes: 10, DifficultyLevel: 1,
			Tags: []string{"tension-release"}, IsActive: true,
		},
		{
			ID: 7, TypeID: 4, Title: "Worry dump", TitleZh: "烦恼清单",
			Description:  "Write every worry down to get it out of your head.",
			Instructions: "Set a 10 minute timer and list everything on your mind. Do not edit or judge.",
			DurationMinutes: 10, DifficultyLevel: 2,
			Tags: []string{"anxiety", "clarity"}, IsActive: true,
		},
		{
			ID: 8, TypeID: 4, Title: "Gratitude journal", TitleZh: "感恩日记",
			Description:  "Three specific things that went well today.",
			Instructions: "Write down three things you are grateful for and why each one happened.",
			DurationMinutes: 10, DifficultyLevel: 1,
			Tags: []string{"positivity"}, IsActive: true,
		},
		{
			ID: 9, TypeID: 5, Title: "Body scan meditation", TitleZh: "身体扫描冥想",
			Description:  "Guided attention from head to toe.",
			Instructions: "Lie down, close your eyes and move attention slowly from scalp to toes, noticing sensations.",
			DurationMinutes: 20, DifficultyLevel: 3,
			Tags: []string{"mindfulness", "sleep"}, ResourceURL: "https://example.com/audio/body-scan", IsActive: true,
		},
		{
			ID: 10, TypeID: 5, Title: "Five senses grounding", TitleZh: "五感着陆练习",
			Description:  "5-4-3-2-1 grounding for acute distress.",
			Instructions: "Name five things you can see, four you can touch, three you can hear, two you can smell, one you can taste.",
			DurationMinutes: 5, DifficultyLevel: 1,
			Tags: []string{"grounding", "quick", "anxiety"}, IsActive: true,
		},
		{
			ID: 11, TypeID: 6, Title: "Call a friend", TitleZh: "给朋友打电话",
			Description:  "Talk it through with someone you trust.",
			Instructions: "Pick one person you trust and call them. Say how you actually feel, not just what happened.",
			DurationMinutes: 20, DifficultyLevel: 3,
			Tags: []string{"connection"}, IsActive: true,
		},
		{
			ID: 12, TypeID: 6, Title: "Plan a meetup", TitleZh: "计划一次见面",
			Description:  "Schedule in-person time with someone this week.",
			Instructions: "Message a friend and fix a concrete time and place to meet within the next few days.",
			DurationMinutes: 10, DifficultyLevel: 2,
			Tags: []string{"connection", "planning"}, IsActive: true,
		},
	}
}

func mappings() []model.SolutionMapping {
	return []model.SolutionMapping{
		// happiness: keep the momentum going
		{EmotionCategoryID: 1, SolutionID: 4, EffectivenessWeight: 0.8, PriorityOrder: 1},
		{EmotionCategoryID: 1, SolutionID: 8, EffectivenessWeight: 0.75, PriorityOrder: 2},
		{EmotionCategoryID: 1, SolutionID: 12, EffectivenessWeight: 0.7, PriorityOrder: 3},
		// sadness
		{EmotionCategoryID: 2, SolutionID: 4, EffectivenessWeight: 0.85, PriorityOrder: 1},
		{EmotionCategoryID: 2, SolutionID: 11, EffectivenessWeight: 0.8, PriorityOrder: 2},
		{EmotionCategoryID: 2, SolutionID: 5, EffectivenessWeight: 0.75, PriorityOrder: 3},
		{EmotionCategoryID: 2, SolutionID: 8, EffectivenessWeight: 0.7, PriorityOrder: 4},
		// anger
		{EmotionCategoryID: 3, SolutionID: 5, EffectivenessWeight: 0.85, PriorityOrder: 1},
		{EmotionCategoryID: 3, SolutionID: 1, EffectivenessWeight: 0.8, PriorityOrder: 2},
		{EmotionCategoryID: 3, SolutionID: 6, EffectivenessWeight: 0.7, PriorityOrder: 3},
		// fear
		{EmotionCategoryID: 4, SolutionID: 10, EffectivenessWeight: 0.9, PriorityOrder: 1},
		{EmotionCategoryID: 4, SolutionID: 1, EffectivenessWeight: 0.85, PriorityOrder: 2},
		{EmotionCategoryID: 4, SolutionID: 7, EffectivenessWeight: 0.75, PriorityOrder: 3},
		{EmotionCategoryID: 4, SolutionID: 9, EffectivenessWeight: 0.7, PriorityOrder: 4},
		// surprise
		{EmotionCategoryID: 5, SolutionID: 10, EffectivenessWeight: 0.75, PriorityOrder: 1},
		{EmotionCategoryID: 5, SolutionID: 7, EffectivenessWeight: 0.7, PriorityOrder: 2},
		// disgust
		{EmotionCategoryID: 6, SolutionID: 6, EffectivenessWeight: 0.7, PriorityOrder: 1},
		{EmotionCategoryID: 6, SolutionID: 3, EffectivenessWeight: 0.65, PriorityOrder: 2},
		// anxiety
		{EmotionCategoryID: 7, SolutionID: 2, EffectivenessWeight: 0.9, PriorityOrder: 1},
		{EmotionCategoryID: 7, SolutionID: 10, EffectivenessWeight: 0.85, PriorityOrder: 2},
		{EmotionCategoryID: 7, SolutionID: 7, EffectivenessWeight: 0.8, PriorityOrder: 3},
		{EmotionCategoryID: 7, SolutionID: 9, EffectivenessWeight: 0.7, PriorityOrder: 4},
		// stress
		{EmotionCategoryID: 8, SolutionID: 1, EffectivenessWeight: 0.85, PriorityOrder: 1},
		{EmotionCategoryID: 8, SolutionID: 6, EffectivenessWeight: 0.8, PriorityOrder: 2},
		{EmotionCategoryID: 8, SolutionID: 3, EffectivenessWeight: 0.75, PriorityOrder: 3},
		{EmotionCategoryID: 8, SolutionID: 9, EffectivenessWeight: 0.7, PriorityOrder: 4},
		// frustration
		{EmotionCategoryID: 9, SolutionID: 5, EffectivenessWeight: 0.8, PriorityOrder: 1},
		{EmotionCategoryID: 9, SolutionID: 7, EffectivenessWeight: 0.75, PriorityOrder: 2},
		{EmotionCategoryID: 9, SolutionID: 11, EffectivenessWeight: 0.7, PriorityOrder: 3},
	}
}
