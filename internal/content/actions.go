// Package content holds the static side of the bot: menu actions,
// keyboards, section scripts and the authored copy texts.
package content

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Action identifies one menu entry.
type Action int

const (
	ActionUnknown Action = iota
	ActionWaterFacts
	ActionReasons46
	ActionDehydration
	ActionQualityFull
	ActionLiveWater
	ActionPromo
	ActionQualityShort
	ActionHealthForm
	ActionConsultation
	ActionBackToMenu
)

// Callback data carried by the inline menu buttons.
const (
	DataWaterFacts   = "MENU_1_WATER_FACTS"
	DataReasons46    = "MENU_2_46_REASONS"
	DataDehydration  = "MENU_3_DEHYDRATION"
	DataQualityFull  = "MENU_4_QUALITY_FULL"
	DataLiveWater    = "MENU_5_LIVE_WATER"
	DataPromo        = "MENU_6_PROMO"
	DataQualityShort = "MENU_7_QUALITY_SHORT"
	DataHealthForm   = "MENU_8_HEALTH_FORM"
	DataConsultation = "MENU_9_CONSULTATION"
	DataBackToMenu   = "BACK_TO_MENU"
)

var actionsByData = map[string]Action{
	DataWaterFacts:   ActionWaterFacts,
	DataReasons46:    ActionReasons46,
	DataDehydration:  ActionDehydration,
	DataQualityFull:  ActionQualityFull,
	DataLiveWater:    ActionLiveWater,
	DataPromo:        ActionPromo,
	DataQualityShort: ActionQualityShort,
	DataHealthForm:   ActionHealthForm,
	DataConsultation: ActionConsultation,
	DataBackToMenu:   ActionBackToMenu,
}

// ActionFromData maps callback data to its Action; anything unrecognized
// is ActionUnknown.
func ActionFromData(data string) Action {
	if a, ok := actionsByData[data]; ok {
		return a
	}
	return ActionUnknown
}

// MainMenuKeyboard is the nine-entry menu attached to the welcome message.
func MainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("💧 Вода. Интересные факты", DataWaterFacts)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📋 46 причин пить воду", DataReasons46)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🤒 Болезни обезвоживания", DataDehydration)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🧪 Качество воды", DataQualityFull)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🌿 Живая щелочная вода", DataLiveWater)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🎁 Промокод на 20%", DataPromo)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🥤 Качество воды", DataQualityShort)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📊 Анкета по здоровью", DataHealthForm)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📞 Записаться на консультацию", DataConsultation)),
	)
}

// BackToMenuKeyboard is the single "return to menu" button attached to
// the last message of a content section.
func BackToMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🏠 Вернуться в меню", DataBackToMenu)),
	)
}
