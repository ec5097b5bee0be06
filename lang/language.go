package lang

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

type HeaderStrings struct {
	Title         string
	StatsTemplate string // watched, total, filtered
	NoResults     string
}

type SearchStrings struct {
	Prompt      string
	Placeholder string
}

type FilterStrings struct {
	TagLabel      string
	YearLabel     string
	TypeLabel     string
	WatchedLabel  string
	FavoriteLabel string
	ViewLabel     string
	ExportLabel   string
	All           string
	Any           string
	Watched       string
	Unwatched     string
	Favorite      string
	NotFavorite   string
	ViewList      string
	ViewGrid      string
	TargetWatched string
	TargetFavor   string
}

type HintStrings struct {
	Browse string
	Search string
	Detail string
	Tags   string
}

type DetailStrings struct {
	EpisodesTemplate string
	Status           string
	Studios          string
	Tags             string
	Synonyms         string
	Related          string
	Sources          string
	Watched          string
	Favorite         string
	None             string
}

type TagPickerStrings struct {
	Title          string
	AllTags        string
	FilterPrompt   string
	StatusSingular string
	StatusPlural   string
}

type ConfirmStrings struct {
	ClearWatchedTemplate string
	Yes                  string
	No                   string
}

type ExportStrings struct {
	Generating     string
	SavedTemplate  string
	FailedTemplate string
	EmptyWatched   string
	EmptyFavorite  string
}

type CommonStrings struct {
	UnknownState  string
	MissingRecord string
	ThemeTemplate string
	ThemeDark     string
	ThemeGreen    string
}

type Strings struct {
	Header  HeaderStrings
	Search  SearchStrings
	Filter  FilterStrings
	Hint    HintStrings
	Detail  DetailStrings
	Tags    TagPickerStrings
	Confirm ConfirmStrings
	Export  ExportStrings
	Common  CommonStrings
}

var (
	mu sync.RWMutex

	translations = map[Locale]*Strings{
		LocaleEnglish: {
			Header: HeaderStrings{
				Title:         "Anime Checklist",
				StatsTemplate: "%s / %s Watched • %s results",
				NoResults:     "No anime match the current filters.",
			},
			Search: SearchStrings{
				Prompt:      "Search: ",
				Placeholder: "type a title…",
			},
			Filter: FilterStrings{
				TagLabel:      "Genre",
				YearLabel:     "Year",
				TypeLabel:     "Type",
				WatchedLabel:  "Status",
				FavoriteLabel: "Favorite",
				ViewLabel:     "View",
				ExportLabel:   "Export",
				All:           "All",
				Any:           "Any",
				Watched:       "Watched",
				Unwatched:     "Unwatched",
				Favorite:      "Favorites",
				NotFavorite:   "Not favorite",
				ViewList:      "List",
				ViewGrid:      "Grid",
				TargetWatched: "watched",
				TargetFavor:   "favorites",
			},
			Hint: HintStrings{
				Browse: "/ search • g genre • y year • T type • w status • f favorite • r reset • v view • space watched • s favorite • enter details • E target • d doc • p pdf • C theme • c clear • q quit",
				Search: "enter/esc done",
				Detail: "space watched • s favorite • ↑/↓ scroll • esc close",
				Tags:   "enter select • / filter • esc back",
			},
			Detail: DetailStrings{
				EpisodesTemplate: "%d eps",
				Status:           "Status",
				Studios:          "Studios",
				Tags:             "Genres",
				Synonyms:         "Also known as",
				Related:          "Related",
				Sources:          "Sources",
				Watched:          "Watched",
				Favorite:         "Favorite",
				None:             "-",
			},
			Tags: TagPickerStrings{
				Title:          "Genres",
				AllTags:        "All genres",
				FilterPrompt:   "Filter: ",
				StatusSingular: "genre",
				StatusPlural:   "genres",
			},
			Confirm: ConfirmStrings{
				ClearWatchedTemplate: "Clear all %s watched entries?",
				Yes:                  "y = yes",
				No:                   "n = no",
			},
			Export: ExportStrings{
				Generating:     "Generating…",
				SavedTemplate:  "Saved %s",
				FailedTemplate: "Export failed: %v",
				EmptyWatched:   "No watched anime to export!",
				EmptyFavorite:  "No favorite anime to export!",
			},
			Common: CommonStrings{
				UnknownState:  "Unknown state",
				MissingRecord: "That entry is no longer available.",
				ThemeTemplate: "Theme: %s",
				ThemeDark:     "dark",
				ThemeGreen:    "green",
			},
		},
		LocaleChinese: {
			Header: HeaderStrings{
				Title:         "动画清单",
				StatsTemplate: "已看 %s / %s • %s 个结果",
				NoResults:     "没有符合当前筛选条件的动画。",
			},
			Search: SearchStrings{
				Prompt:      "搜索：",
				Placeholder: "输入名称…",
			},
			Filter: FilterStrings{
				TagLabel:      "类型",
				YearLabel:     "年份",
				TypeLabel:     "形式",
				WatchedLabel:  "状态",
				FavoriteLabel: "收藏",
				ViewLabel:     "视图",
				ExportLabel:   "导出",
				All:           "全部",
				Any:           "不限",
				Watched:       "已看",
				Unwatched:     "未看",
				Favorite:      "已收藏",
				NotFavorite:   "未收藏",
				ViewList:      "列表",
				ViewGrid:      "网格",
				TargetWatched: "已看",
				TargetFavor:   "收藏",
			},
			Hint: HintStrings{
				Browse: "/ 搜索 • g 类型 • y 年份 • T 形式 • w 状态 • f 收藏 • r 重置 • v 视图 • 空格 已看 • s 收藏 • 回车 详情 • E 目标 • d doc • p pdf • C 主题 • c 清空 • q 退出",
				Search: "回车/esc 完成",
				Detail: "空格 已看 • s 收藏 • ↑/↓ 滚动 • esc 关闭",
				Tags:   "回车 选择 • / 筛选 • esc 返回",
			},
			Detail: DetailStrings{
				EpisodesTemplate: "%d 集",
				Status:           "状态",
				Studios:          "制作",
				Tags:             "类型",
				Synonyms:         "别名",
				Related:          "相关",
				Sources:          "来源",
				Watched:          "已看",
				Favorite:         "收藏",
				None:             "-",
			},
			Tags: TagPickerStrings{
				Title:          "类型",
				AllTags:        "全部类型",
				FilterPrompt:   "筛选：",
				StatusSingular: "个类型",
				StatusPlural:   "个类型",
			},
			Confirm: ConfirmStrings{
				ClearWatchedTemplate: "确认清空全部 %s 条已看记录?",
				Yes:                  "y 确认",
				No:                   "n 取消",
			},
			Export: ExportStrings{
				Generating:     "生成中…",
				SavedTemplate:  "已保存 %s",
				FailedTemplate: "导出失败: %v",
				EmptyWatched:   "没有可导出的已看动画！",
				EmptyFavorite:  "没有可导出的收藏动画！",
			},
			Common: CommonStrings{
				UnknownState:  "未知状态",
				MissingRecord: "该条目已不存在。",
				ThemeTemplate: "主题: %s",
				ThemeDark:     "深色",
				ThemeGreen:    "绿色",
			},
		},
	}

	tags = map[Locale]language.Tag{
		LocaleEnglish: language.English,
		LocaleChinese: language.Chinese,
	}

	availableLocales = []Locale{
		LocaleEnglish,
		LocaleChinese,
	}

	currentLocale = LocaleEnglish
	current       = translations[currentLocale]
	printer       = message.NewPrinter(language.English)
)

func AvailableLocales() []Locale {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Locale, len(availableLocales))
	copy(out, availableLocales)
	return out
}

func SetLocale(loc Locale) bool {
	mu.Lock()
	defer mu.Unlock()
	strings, ok := translations[loc]
	if !ok {
		return false
	}
	currentLocale = loc
	current = strings
	printer = message.NewPrinter(tags[loc])
	return true
}

func CurrentLocale() Locale {
	mu.RLock()
	defer mu.RUnlock()
	return currentLocale
}

func Active() *Strings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Number groups digits the way the active locale does.
func Number(n int) string {
	mu.RLock()
	p := printer
	mu.RUnlock()
	return p.Sprintf("%d", n)
}

func StatsLine(watched, total, filtered int) string {
	s := Active()
	return fmt.Sprintf(s.Header.StatsTemplate, Number(watched), Number(total), Number(filtered))
}

func Episodes(n int) string {
	s := Active()
	return fmt.Sprintf(s.Detail.EpisodesTemplate, n)
}

func ClearWatchedPrompt(count int) string {
	s := Active()
	return fmt.Sprintf(s.Confirm.ClearWatchedTemplate, Number(count))
}

func ExportSaved(path string) string {
	s := Active()
	return fmt.Sprintf(s.Export.SavedTemplate, path)
}

func ExportFailed(err error) string {
	s := Active()
	return fmt.Sprintf(s.Export.FailedTemplate, err)
}

// ThemeChanged names the theme that is now active.
func ThemeChanged(green bool) string {
	s := Active()
	name := s.Common.ThemeDark
	if green {
		name = s.Common.ThemeGreen
	}
	return fmt.Sprintf(s.Common.ThemeTemplate, name)
}
