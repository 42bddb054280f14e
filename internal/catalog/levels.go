package catalog

// 内置关卡内容（俄语授课内容，面向 1-11 年级的金融素养课程）
var builtinLevels = []Level{
	{
		ID:          "1-1",
		Title:       "Деньги и их назначение",
		Description: "Узнайте, для чего нужны деньги",
		Grade:       1,
		Questions: []Question{
			{
				ID:           "q1-1-1",
				Text:         "Для чего нужны деньги?",
				Choices:      []string{"Для игр", "Для покупки товаров", "Для украшения", "Для коллекции"},
				CorrectIndex: 1,
				Explanation:  "Деньги нужны для обмена на товары и услуги.",
			},
			{
				ID:           "q1-1-2",
				Text:         "Где хранить деньги безопаснее всего?",
				Choices:      []string{"Под подушкой", "В банке", "В кармане", "В игрушке"},
				CorrectIndex: 1,
				Explanation:  "Банк защищает деньги и может начислять проценты.",
			},
		},
		Reward: Reward{CoinsPerCorrect: 10, PointsPerCorrect: 10},
	},
	{
		ID:          "1-2",
		Title:       "Монеты и купюры",
		Description: "Различаем монеты и бумажные деньги",
		Grade:       1,
		Questions: []Question{
			{
				ID:           "q1-2-1",
				Text:         "Чем монета отличается от купюры?",
				Choices:      []string{"Монета из металла, купюра из бумаги", "Ничем", "Монета дороже", "Купюра тяжелее"},
				CorrectIndex: 0,
				Explanation:  "Монеты чеканят из металла, купюры печатают на специальной бумаге.",
			},
		},
		Reward: Reward{CoinsPerCorrect: 10, PointsPerCorrect: 10},
	},
	{
		ID:          "2-1",
		Title:       "Карманные деньги",
		Description: "Учимся планировать карманные деньги",
		Grade:       2,
		Questions: []Question{
			{
				ID:           "q2-1-1",
				Text:         "Что разумнее сделать с карманными деньгами?",
				Choices:      []string{"Сразу всё потратить", "Часть отложить, часть потратить", "Отдать другу", "Потерять"},
				CorrectIndex: 1,
				Explanation:  "Откладывая часть денег, вы копите на более важные цели.",
			},
			{
				ID:           "q2-1-2",
				Text:         "Как называется запас денег на будущее?",
				Choices:      []string{"Сдача", "Сбережения", "Долг", "Налог"},
				CorrectIndex: 1,
				Explanation:  "Сбережения — это деньги, отложенные на будущие расходы.",
			},
		},
		Reward: Reward{CoinsPerCorrect: 10, PointsPerCorrect: 10},
	},
	{
		ID:          "3-1",
		Title:       "Семейный бюджет",
		Description: "Доходы и расходы семьи",
		Grade:       3,
		Questions: []Question{
			{
				ID:           "q3-1-1",
				Text:         "Что такое доход семьи?",
				Choices:      []string{"Деньги, которые семья тратит", "Деньги, которые семья получает", "Деньги в копилке", "Деньги соседей"},
				CorrectIndex: 1,
				Explanation:  "Доход — это все деньги, которые поступают в семью: зарплата, пенсия, стипендия.",
			},
			{
				ID:           "q3-1-2",
				Text:         "Что произойдёт, если расходы больше доходов?",
				Choices:      []string{"Появятся сбережения", "Появятся долги", "Ничего", "Вырастет зарплата"},
				CorrectIndex: 1,
				Explanation:  "Когда тратят больше, чем зарабатывают, приходится брать в долг.",
			},
		},
		Reward: Reward{CoinsPerCorrect: 10, PointsPerCorrect: 10},
	},
	{
		ID:          "5-1",
		Title:       "Покупки и цены",
		Description: "Как сравнивать цены и делать разумные покупки",
		Grade:       5,
		Questions: []Question{
			{
				ID:           "q5-1-1",
				Text:         "Что выгоднее купить: 1 кг яблок за 100 рублей или 2 кг за 180 рублей?",
				Choices:      []string{"1 кг за 100", "2 кг за 180", "Одинаково", "Нельзя сравнить"},
				CorrectIndex: 1,
				Explanation:  "2 кг за 180 рублей — это 90 рублей за килограмм, дешевле первого варианта.",
			},
			{
				ID:           "q5-1-2",
				Text:         "Что такое скидка?",
				Choices:      []string{"Надбавка к цене", "Снижение цены", "Новый товар", "Вид налога"},
				CorrectIndex: 1,
				Explanation:  "Скидка — временное снижение цены товара.",
			},
			{
				ID:           "q5-1-3",
				Text:         "Зачем составлять список покупок?",
				Choices:      []string{"Чтобы купить лишнее", "Чтобы не забыть нужное и не переплатить", "Для красоты", "Так требует магазин"},
				CorrectIndex: 1,
				Explanation:  "Список помогает покупать только нужное и контролировать расходы.",
			},
			{
				ID:           "q5-1-4",
				Text:         "Что означает акция «2 по цене 1»?",
				Choices:      []string{"Товар стал дороже", "Два товара продают по цене одного", "Товар запрещён", "Цена не изменилась"},
				CorrectIndex: 1,
				Explanation:  "По такой акции второй товар достаётся бесплатно — но покупать стоит только нужное.",
			},
		},
		Reward: Reward{CoinsPerCorrect: 10, PointsPerCorrect: 10},
	},
	{
		ID:          "7-1",
		Title:       "Банковская карта",
		Description: "Безопасное использование банковской карты",
		Grade:       7,
		Questions: []Question{
			{
				ID:           "q7-1-1",
				Text:         "Кому можно сообщать PIN-код своей карты?",
				Choices:      []string{"Друзьям", "Сотруднику банка по телефону", "Никому", "Продавцу в магазине"},
				CorrectIndex: 2,
				Explanation:  "PIN-код нельзя сообщать никому, даже сотрудникам банка.",
			},
			{
				ID:           "q7-1-2",
				Text:         "Что делать при потере банковской карты?",
				Choices:      []string{"Ничего", "Сразу заблокировать карту", "Подождать неделю", "Выбросить договор"},
				CorrectIndex: 1,
				Explanation:  "Потерянную карту нужно немедленно заблокировать через банк или приложение.",
			},
		},
		Reward: Reward{CoinsPerCorrect: 15, PointsPerCorrect: 10},
	},
	{
		ID:          "9-1",
		Title:       "Вклады и проценты",
		Description: "Как работают банковские вклады",
		Grade:       9,
		Questions: []Question{
			{
				ID:           "q9-1-1",
				Text:         "Вы положили 1000 рублей под 10% годовых. Сколько будет через год?",
				Choices:      []string{"1010 рублей", "1100 рублей", "1000 рублей", "2000 рублей"},
				CorrectIndex: 1,
				Explanation:  "10% от 1000 рублей — это 100 рублей дохода за год.",
			},
			{
				ID:           "q9-1-2",
				Text:         "Что такое сложный процент?",
				Choices:      []string{"Процент на процент", "Очень высокий процент", "Процент по кредиту", "Налог на вклад"},
				CorrectIndex: 0,
				Explanation:  "При сложном проценте доход начисляется и на вклад, и на уже начисленные проценты.",
			},
		},
		Reward: Reward{CoinsPerCorrect: 20, PointsPerCorrect: 15},
	},
	{
		ID:          "11-1",
		Title:       "Кредиты и риски",
		Description: "Когда кредит помогает, а когда вредит",
		Grade:       11,
		Questions: []Question{
			{
				ID:           "q11-1-1",
				Text:         "Что важнее всего проверить перед оформлением кредита?",
				Choices:      []string{"Цвет договора", "Полную стоимость кредита", "Название банка", "Рекламу"},
				CorrectIndex: 1,
				Explanation:  "Полная стоимость кредита показывает все переплаты, включая комиссии.",
			},
			{
				ID:           "q11-1-2",
				Text:         "Что такое финансовая подушка безопасности?",
				Choices:      []string{"Страховка автомобиля", "Запас денег на 3-6 месяцев жизни", "Кредитная карта", "Акции компаний"},
				CorrectIndex: 1,
				Explanation:  "Подушка безопасности — сбережения, позволяющие прожить несколько месяцев без дохода.",
			},
		},
		Reward: Reward{CoinsPerCorrect: 20, PointsPerCorrect: 15},
	},
	{
		ID:          "12-1",
		Title:       "Тест сохранения результатов",
		Description: "Тестовый уровень для проверки сохранения в БД",
		Grade:       12,
		Questions: []Question{
			{
				ID:           "q12-1-1",
				Text:         "Тестовый вопрос: 2 + 2 = ?",
				Choices:      []string{"3", "4", "5", "6"},
				CorrectIndex: 1,
				Explanation:  "2 + 2 = 4",
			},
		},
		Reward: Reward{CoinsPerCorrect: 10, PointsPerCorrect: 10},
	},
}
