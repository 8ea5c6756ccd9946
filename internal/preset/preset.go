// Package preset holds the rooms and tasks seeded on first run.
// Preset entities carry stable ids so reinstalls and backups line up, are
// editable like any other room, but cannot be deleted.
package preset

import (
	"time"

	"github.com/aitbekov/tirlik/internal/models"
)

func room(id, ru, kz, icon, color string, position int) models.Room {
	return models.Room{
		ID:        id,
		Name:      models.LocalizedName{RU: ru, KZ: kz},
		Icon:      icon,
		Color:     color,
		Position:  position,
		IsPreset:  true,
		CreatedAt: time.Now(),
	}
}

func task(id, roomID, ru, kz string, position int) models.Task {
	return models.Task{
		ID:        id,
		RoomID:    roomID,
		Name:      models.LocalizedName{RU: ru, KZ: kz},
		Position:  position,
		IsPreset:  true,
		CreatedAt: time.Now(),
	}
}

// Rooms returns the preset rooms in display order.
func Rooms() []models.Room {
	return []models.Room{
		room("room-whole-house", "Весь дом", "Бүкіл үй", "home", "sky", 0),
		room("room-hallway-1", "Прихожая 1 этаж", "Кіреберіс 1 қабат", "door-open", "amber", 1),
		room("room-kitchen", "Кухня", "Ас үй", "chef-hat", "orange", 2),
		room("room-stairs", "Лестница", "Баспалдақ", "stairs", "stone", 3),
		room("room-corridor-2", "Коридор 2 этаж", "Дәліз 2 қабат", "route", "slate", 4),
		room("room-living", "Гостиная", "Қонақ бөлме", "sofa", "emerald", 5),
		room("room-bathroom", "Ванная", "Жуынатын бөлме", "bath", "cyan", 6),
		room("room-laundry", "Прачечная", "Кір жуатын бөлме", "washing-machine", "indigo", 7),
		room("room-bedroom-1", "Спальня 1", "Жатын бөлме 1", "bed", "rose", 8),
		room("room-bedroom-2", "Спальня 2", "Жатын бөлме 2", "bed-double", "pink", 9),
		room("room-bedroom-3", "Спальня 3", "Жатын бөлме 3", "bed-single", "fuchsia", 10),
		room("room-windows", "Окна", "Терезелер", "app-window", "blue", 11),
		room("room-balcony", "Балкон", "Балкон", "fence", "teal", 12),
		room("room-garden", "Сад", "Бақ", "flower", "green", 13),
	}
}

// Tasks returns the preset tasks. Positions are scoped to each room.
func Tasks() []models.Task {
	return []models.Task{
		// Весь дом
		task("task-whole-house-vacuum", "room-whole-house", "Пропылесосить", "Шаңсорғыш тарту", 0),
		task("task-whole-house-mop", "room-whole-house", "Влажная уборка", "Дымқыл тазалау", 1),
		task("task-whole-house-dust", "room-whole-house", "Протереть пыль", "Шаңды сүрту", 2),

		// Прихожая 1 этаж
		task("task-hallway-vacuum", "room-hallway-1", "Пропылесосить", "Шаңсорғыш тарту", 0),
		task("task-hallway-dust", "room-hallway-1", "Протереть пыль", "Шаңды сүрту", 1),
		task("task-hallway-shoes", "room-hallway-1", "Убрать обувь", "Аяқ киімді жинау", 2),

		// Кухня
		task("task-kitchen-dishes", "room-kitchen", "Помыть посуду", "Ыдыс жуу", 0),
		task("task-kitchen-table", "room-kitchen", "Протереть стол", "Үстелді сүрту", 1),
		task("task-kitchen-stove", "room-kitchen", "Протереть плиту", "Плитаны сүрту", 2),
		task("task-kitchen-floor", "room-kitchen", "Помыть пол", "Еденді жуу", 3),
		task("task-kitchen-trash", "room-kitchen", "Вынести мусор", "Қоқысты шығару", 4),

		// Лестница
		task("task-stairs-vacuum", "room-stairs", "Пропылесосить", "Шаңсорғыш тарту", 0),
		task("task-stairs-railing", "room-stairs", "Протереть перила", "Тұтқаларды сүрту", 1),

		// Коридор 2 этаж
		task("task-corridor-vacuum", "room-corridor-2", "Пропылесосить", "Шаңсорғыш тарту", 0),
		task("task-corridor-dust", "room-corridor-2", "Протереть пыль", "Шаңды сүрту", 1),

		// Гостиная
		task("task-living-vacuum", "room-living", "Пропылесосить", "Шаңсорғыш тарту", 0),
		task("task-living-dust", "room-living", "Протереть пыль", "Шаңды сүрту", 1),
		task("task-living-tidy", "room-living", "Расставить вещи", "Заттарды орналастыру", 2),
		task("task-living-floor", "room-living", "Помыть пол", "Еденді жуу", 3),

		// Ванная
		task("task-bathroom-sink", "room-bathroom", "Помыть раковину", "Раковинаны жуу", 0),
		task("task-bathroom-tub", "room-bathroom", "Помыть ванну", "Ваннаны жуу", 1),
		task("task-bathroom-toilet", "room-bathroom", "Помыть унитаз", "Дәретхананы жуу", 2),
		task("task-bathroom-floor", "room-bathroom", "Помыть пол", "Еденді жуу", 3),
		task("task-bathroom-mirror", "room-bathroom", "Протереть зеркало", "Айнаны сүрту", 4),

		// Прачечная
		task("task-laundry-wash", "room-laundry", "Постирать", "Кір жуу", 0),
		task("task-laundry-hang", "room-laundry", "Развесить бельё", "Кірді ілу", 1),
		task("task-laundry-tidy", "room-laundry", "Убрать", "Жинау", 2),

		// Спальня 1
		task("task-bedroom1-bed", "room-bedroom-1", "Застелить кровать", "Төсекті жасау", 0),
		task("task-bedroom1-vacuum", "room-bedroom-1", "Пропылесосить", "Шаңсорғыш тарту", 1),
		task("task-bedroom1-dust", "room-bedroom-1", "Протереть пыль", "Шаңды сүрту", 2),
		task("task-bedroom1-air", "room-bedroom-1", "Проветрить", "Желдету", 3),

		// Спальня 2
		task("task-bedroom2-bed", "room-bedroom-2", "Застелить кровать", "Төсекті жасау", 0),
		task("task-bedroom2-vacuum", "room-bedroom-2", "Пропылесосить", "Шаңсорғыш тарту", 1),
		task("task-bedroom2-dust", "room-bedroom-2", "Протереть пыль", "Шаңды сүрту", 2),
		task("task-bedroom2-air", "room-bedroom-2", "Проветрить", "Желдету", 3),

		// Спальня 3
		task("task-bedroom3-bed", "room-bedroom-3", "Застелить кровать", "Төсекті жасау", 0),
		task("task-bedroom3-vacuum", "room-bedroom-3", "Пропылесосить", "Шаңсорғыш тарту", 1),
		task("task-bedroom3-dust", "room-bedroom-3", "Протереть пыль", "Шаңды сүрту", 2),
		task("task-bedroom3-air", "room-bedroom-3", "Проветрить", "Желдету", 3),

		// Окна
		task("task-windows-wash", "room-windows", "Помыть окна", "Терезелерді жуу", 0),
		task("task-windows-sills", "room-windows", "Протереть подоконники", "Терезе тақтайларын сүрту", 1),

		// Балкон
		task("task-balcony-sweep", "room-balcony", "Подмести", "Сыпыру", 0),
		task("task-balcony-wipe", "room-balcony", "Протереть", "Сүрту", 1),

		// Сад
		task("task-garden-water", "room-garden", "Полить растения", "Өсімдіктерді суару", 0),
		task("task-garden-trash", "room-garden", "Убрать мусор", "Қоқысты жинау", 1),
		task("task-garden-sweep", "room-garden", "Подмести дорожки", "Жолдарды сыпыру", 2),
	}
}
