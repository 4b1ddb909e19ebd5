package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	en := language.English
	ru := language.Russian

	// Shell
	message.SetString(en, "app.tab.tester", "Switch Tester")
	message.SetString(ru, "app.tab.tester", "Тестер клавиш")
	message.SetString(en, "app.tab.typing", "Speed Type")
	message.SetString(ru, "app.tab.typing", "Скорость печати")
	message.SetString(en, "app.help.tester", "click a tab to switch · ctrl+c quit")
	message.SetString(ru, "app.help.tester", "вкладки переключаются мышью · ctrl+c выход")
	message.SetString(en, "app.help.typing", "tab switch view · enter try again · ctrl+c quit")
	message.SetString(ru, "app.help.typing", "tab смена режима · enter заново · ctrl+c выход")

	// Tester
	message.SetString(en, "tester.pressed", "Pressed")
	message.SetString(ru, "tester.pressed", "Нажато")
	message.SetString(en, "tester.held", "Held")
	message.SetString(ru, "tester.held", "Зажато")
	message.SetString(en, "tester.code", "Code")
	message.SetString(ru, "tester.code", "Код")
	message.SetString(en, "tester.reset", "Reset")
	message.SetString(ru, "tester.reset", "Сброс")

	// Typing
	message.SetString(en, "typing.speed", "Speed")
	message.SetString(ru, "typing.speed", "Скорость")
	message.SetString(en, "typing.prompt", "type...")
	message.SetString(ru, "typing.prompt", "печатай...")
	message.SetString(en, "typing.complete", "Complete")
	message.SetString(ru, "typing.complete", "Готово")
	message.SetString(en, "typing.again", "Try Again ↻")
	message.SetString(ru, "typing.again", "Ещё раз ↻")
	message.SetString(en, "typing.wpm", "%d WPM")
	message.SetString(ru, "typing.wpm", "%d сл/мин")
	message.SetString(en, "typing.progress", "Progress %d%%")
	message.SetString(ru, "typing.progress", "Прогресс %d%%")
	message.SetString(en, "typing.last", "Last %d WPM")
	message.SetString(ru, "typing.last", "Последний %d сл/мин")
	message.SetString(en, "typing.best", "Best %d WPM")
	message.SetString(ru, "typing.best", "Лучший %d сл/мин")
}
