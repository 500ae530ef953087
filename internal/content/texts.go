package content

// Texts shown outside the content sections.
const (
	StartText = "Здравствуйте! 👋\n\n" +
		"Я помогу разобраться, какую воду мы пьём каждый день, сколько её нужно организму " +
		"и как она влияет на самочувствие.\n\n" +
		"Выберите раздел в меню ниже 👇"

	MenuPromptText     = "Пожалуйста, воспользуйтесь меню ниже 👇"
	UnknownCommandText = "Неизвестная команда. Показываю меню 👇"
	ThrottleAnswerText = "Пожалуйста, не нажимайте так часто 🙂"
)

// Раздел «Вода. Интересные факты».
const (
	waterFacts1Text = "<b>Вода — основа жизни.</b>\n\n" +
		"Тело взрослого человека на 60–70% состоит из воды: мозг — на 85%, кровь — на 90%, " +
		"даже кости — почти на треть. Каждая клетка рождается, живёт и работает в водной среде.\n\n" +
		"Когда воды не хватает, организм начинает экономить: густеет кровь, замедляется обмен веществ, " +
		"появляются усталость и головная боль."

	waterFactsBloodVideoText = "Посмотрите, как меняется кровь под микроскопом уже через 20 минут " +
		"после стакана чистой воды: эритроциты расходятся и снова свободно переносят кислород."

	waterFacts2Text = "За сутки организм теряет до 2,5 литров влаги — с дыханием, потом и работой почек. " +
		"Эти потери нужно восполнять именно водой: чай, кофе и сладкие напитки заставляют клетку " +
		"отдавать воду, а не запасать её."

	waterFacts3VideoText = "Сколько воды нужно именно вам? Простая формула: 30 мл на килограмм веса в день. " +
		"Начинайте утро со стакана тёплой воды — и организм скажет спасибо."
)

// Раздел «46 причин пить воду».
const reasons46Text = "<b>46 причин пить воду каждый день:</b>\n\n" +
	"1. Вода — главный источник энергии для клетки.\n" +
	"2. Разжижает кровь и облегчает работу сердца.\n" +
	"3. Помогает доставлять кислород к органам.\n" +
	"4. Выводит продукты обмена и токсины.\n" +
	"5. Поддерживает нормальное давление.\n" +
	"6. Улучшает пищеварение и работу кишечника.\n" +
	"7. Снижает чувство ложного голода.\n" +
	"8. Помогает контролировать вес.\n" +
	"9. Увлажняет кожу изнутри.\n" +
	"10. Замедляет образование морщин.\n" +
	"11. Поддерживает упругость суставных хрящей.\n" +
	"12. Смазывает суставы и снижает боль при движении.\n" +
	"13. Защищает позвоночные диски.\n" +
	"14. Помогает почкам фильтровать кровь.\n" +
	"15. Снижает риск образования камней.\n" +
	"16. Поддерживает работу печени.\n" +
	"17. Улучшает концентрацию и память.\n" +
	"18. Снижает частоту головных болей.\n" +
	"19. Помогает при мигрени.\n" +
	"20. Поддерживает стабильное настроение.\n" +
	"21. Снижает тревожность и раздражительность.\n" +
	"22. Улучшает качество сна.\n" +
	"23. Помогает просыпаться бодрым.\n" +
	"24. Повышает выносливость на тренировках.\n" +
	"25. Ускоряет восстановление мышц.\n" +
	"26. Регулирует температуру тела.\n" +
	"27. Поддерживает иммунитет.\n" +
	"28. Помогает лимфе выводить «мусор» из тканей.\n" +
	"29. Снижает аллергические реакции.\n" +
	"30. Облегчает течение простуды.\n" +
	"31. Разжижает мокроту при кашле.\n" +
	"32. Увлажняет слизистые и защищает от вирусов.\n" +
	"33. Поддерживает здоровье дёсен и зубов.\n" +
	"34. Освежает дыхание.\n" +
	"35. Улучшает состояние волос и ногтей.\n" +
	"36. Помогает желудку защищаться от кислоты.\n" +
	"37. Снижает изжогу.\n" +
	"38. Предотвращает запоры.\n" +
	"39. Поддерживает микрофлору кишечника.\n" +
	"40. Помогает усваивать витамины и минералы.\n" +
	"41. Снижает отёчность — организм перестаёт запасать воду.\n" +
	"42. Поддерживает гормональный баланс.\n" +
	"43. Замедляет процессы старения.\n" +
	"44. Снижает риск хронической усталости.\n" +
	"45. Помогает яснее мыслить и быстрее принимать решения.\n" +
	"46. Это самый простой и дешёвый способ заботы о здоровье.\n\n" +
	"Начните с малого: один дополнительный стакан чистой воды сегодня."

// Раздел «Болезни обезвоживания».
const (
	dehydrationVideo5Text = "<b>Обезвоживание — тихая причина многих диагнозов.</b>\n\n" +
		"Организм не умеет просить воду словами. Вместо этого он подаёт сигналы, которые мы привыкли " +
		"заглушать таблетками: головная боль, скачки давления, боли в суставах, изжога, хроническая усталость.\n\n" +
		"При нехватке воды тело включает режим жёсткой экономии. Первыми страдают кожа и мышцы, затем — " +
		"суставы и позвоночник, а кровь густеет и сердцу приходится работать с перегрузкой.\n\n" +
		"Посмотрите видео: врач объясняет, какие состояния напрямую связаны с хроническим обезвоживанием " +
		"и почему стакан воды иногда работает лучше обезболивающего."

	dehydrationVideo6Text = "Продолжение: как отличить жажду от голода и почему к вечеру отекают ноги, " +
		"если днём вы почти не пили."

	dehydrationQuizText = "Пройдите короткий тест на скрытое обезвоживание: ответьте «да» или «нет» " +
		"на вопросы с картинки. Три и больше «да» — организму не хватает воды."
)

// Раздел «Качество воды» (полный).
const (
	qualityIntroText = "<b>Какую воду мы пьём?</b>\n\n" +
		"Вода бывает разной: из-под крана, кипячёная, бутилированная, фильтрованная. " +
		"Разберём по порядку, что попадает в стакан и как это влияет на организм."

	quality6ParamsText = "Качество питьевой воды определяют шесть параметров:\n\n" +
		"1. Чистота — отсутствие хлора, тяжёлых металлов и органики.\n" +
		"2. Минерализация — количество растворённых солей.\n" +
		"3. Поверхностное натяжение — «текучесть» воды.\n" +
		"4. Кислотно-щелочной баланс (pH).\n" +
		"5. Окислительно-восстановительный потенциал (ОВП).\n" +
		"6. Структура воды.\n\n" +
		"Пройдёмся по каждому параметру."

	qualityTapWaterText = "Вода из-под крана: хлор убивает бактерии, но вместе с ними раздражает слизистые " +
		"и разрушает полезную микрофлору. Старые трубы добавляют ржавчину и тяжёлые металлы. " +
		"Посмотрите простой опыт из видео."

	qualityNext1Text = "Может быть, спасает кипячение? Смотрим дальше 👇"

	qualityKettleText = "Кипячёная вода: хлор частично уходит, но соли жёсткости остаются — это та самая накипь " +
		"на стенках чайника. Такая же «накипь» постепенно оседает в сосудах и почках. " +
		"Кипячёную воду называют «мёртвой»: кислорода в ней почти нет."

	qualityBottledText = "Вода в бутылках: часто это та же водопроводная вода после промышленной фильтрации. " +
		"Пластик при хранении на свету и в тепле отдаёт воде микрочастицы. " +
		"Внимательно читайте этикетку: источник, минерализация, срок годности."

	qualityNext2Text = "Теперь о параметре, про который почти никто не знает, — поверхностное натяжение 👇"

	qualitySurfaceTensionText = "Поверхностное натяжение определяет, насколько легко вода проникает в клетку. " +
		"У водопроводной воды оно около 73 дин/см, у межклеточной жидкости — около 43. " +
		"Чем ближе вода к этому значению, тем меньше энергии организм тратит на её усвоение."

	qualitySurfaceTensionExamplesText = "Сравните на картинке: капля обычной воды держится горкой, " +
		"а капля «лёгкой» воды растекается. Именно такая вода быстрее утоляет жажду."

	qualityStructureText = "Структура воды — это порядок, в котором молекулы связаны друг с другом. " +
		"Талая и родниковая вода имеют упорядоченную структуру, и клетка принимает такую воду без «перестройки»."

	qualityNext3Text = "Об этом снят целый фильм — короткий фрагмент ниже 👇"

	qualityVideo9Text = "Фрагмент фильма о памяти воды: как замороженные кристаллы меняют форму " +
		"в зависимости от того, что растворено в воде."

	qualityNext4Text = "Остались два важных параметра — минерализация и pH 👇"

	qualityMineralizationText = "Минерализация: полезная вода содержит 200–500 мг/л растворённых солей. " +
		"Дистиллированная вода вымывает минералы из организма, сверхминерализованная — перегружает почки."

	qualityPHText = "pH крови человека — 7,35–7,45, слегка щелочной. Большинство напитков — кола, кофе, " +
		"пакетированные соки — имеют pH 2,5–5, и организм тратит щелочные резервы на их нейтрализацию. " +
		"Полезная вода имеет pH 7,5–9."

	qualityOVPText = "ОВП показывает, отдаёт вода электроны или забирает. У свежей талой воды ОВП отрицательный " +
		"(она работает как антиоксидант), у водопроводной — +200…+400 мВ. " +
		"Чем ниже ОВП, тем меньше свободных радикалов в организме."
)

// Раздел «Живая щелочная вода».
const (
	liveWaterMainText = "<b>Живая щелочная вода</b>\n\n" +
		"Правильная вода — чистая, слегка щелочная, с низким поверхностным натяжением и отрицательным ОВП. " +
		"Именно такую воду пьют в «голубых зонах» планеты, где людей старше ста лет больше всего.\n\n" +
		"Самый простой способ получить такую воду дома — добавить в стакан природный минеральный состав: " +
		"вода становится мягкой, щелочной и биодоступной уже через пару минут."

	liveWaterYoutubeText = "Вода японских долгожителей:\nhttps://youtu.be/pO19EG5_fb0?si=IcPR4jQfRb8MQAx5"

	liveWaterSodaVideoText = "А что насчёт соды? Щелочная, но неживая: посмотрите, чем сода отличается " +
		"от природной щелочной воды и почему ей нельзя заменить минералы."
)

// Остальные разделы.
const (
	promoText = "🎁 <b>Промокод на скидку 20%</b>\n\n" +
		"Назовите промокод <b>ВОДА20</b> при заказе минерального состава — " +
		"и получите скидку 20% на первую покупку.\n\n" +
		"Промокод действует 7 дней с момента получения."

	qualityShortEsseText = "Коротко о качестве воды: четыре минуты, после которых вы перестанете " +
		"покупать воду не глядя. Самое важное из большого раздела — в одном видео."

	healthFormText = "📊 Анкета по здоровью\n\n" +
		"Ответьте на 12 коротких вопросов — и я подскажу, сколько воды нужно именно вам " +
		"и с чего начать. Заполнение занимает 3–4 минуты:\n" +
		"https://forms.gle/waterbot-health-check\n\n" +
		"После заполнения вернитесь в меню — консультант свяжется с вами в течение дня."

	consultationText = "📞 Запись на консультацию\n\n" +
		"Напишите в личные сообщения слово «КОНСУЛЬТАЦИЯ» — и мы подберём удобное время. " +
		"Консультация бесплатная и длится 20–30 минут:\n" +
		"https://t.me/zhivaya_voda_consult"
)
