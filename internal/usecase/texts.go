package usecase

// Тексты бота и подписи кнопок. Анкета на украинском, данные — на английском.

const (
	BtnApply   = "📝 Подати заявку на зйомку"
	BtnInfo    = "ℹ️ Як це працює"
	BtnBack    = "⬅️ Назад до дат"
	BtnSkip    = "ДАЛІ"
	BtnYes     = "Так"
	BtnNo      = "Ні"
	BtnConsent = "Погоджуюсь ✅"
	BtnMore    = "➕ Подати ще одну людину"
	BtnFinish  = "✅ Завершити"
)

const (
	textWelcome = "Привіт! 💛\n\nЦе бот для подачі заявки на зйомку.\nЯ зберу дані для модельного релізу та допоможу обрати день і час.\n\nНатисніть кнопку нижче 👇"

	textInfo = "Як це працює 💡\n\n1) Ви обираєте дату та час.\n2) Заповнюєте дані англійською (як у документі).\n3) Додаєте портретне фото.\n\nПісля подачі заявки менеджер опрацює списки ближче до дати зйомки.\nЛокацію та фінальні деталі ми надішлемо окремо ✅"

	textAskDate = "Оберіть, будь ласка, дату зйомки 📅"
	textAskTime = "Чудово! Тепер оберіть час 🕒"
	textAskName = "Дякую 💛\nТепер введіть, будь ласка, імʼя та прізвище англійською.\nПриклад: Ivan Petrenko"
	textAskDOB  = "Супер!\nТепер дата народження 🗓\nВведіть у форматі: 17.05.1994"

	textAskAddress = "Тепер адреса проживання 🏡\nЯкщо вам комфортно — додайте адресу англійською (вулиця, будинок).\nЯкщо не хочете — це абсолютно ок 😊\nНатисніть «ДАЛІ», і менеджер уточнить це питання пізніше."
	textAskCity    = "Дякую! 💛\nТепер місто проживання англійською.\nПриклад: Kyiv"

	textAskPhone = "Дякую!\nТепер номер телефону 📞\nВведіть ТІЛЬКИ цифри у форматі: 380931111111"
	textAskEmail = "Чудово!\nТепер електронна пошта ✉️\nПриклад: name@example.com"

	textAskMinor    = "Заявка подається для особи, якій ще не виповнилось 18 років? 👶"
	textAskGuardian = "Вкажіть, будь ласка, імʼя та прізвище опікуна англійською.\nПриклад: Olena Petrenko"

	textAskPhoto   = "Майже готово ✨\nНадішліть, будь ласка, портретне фото (селфі або портрет).\nБез фільтрів — як вам комфортно 💛"
	textAskConsent = "Останній крок 📄\nПідтвердіть, будь ласка, згоду на обробку даних та умови модельного релізу."

	textFinal = "Дякуємо! 💛 Ваша заявка успішно надіслана.\n\nМенеджер опрацьовує списки ближче до дати зйомки.\nІнформацію по локації та підтвердження ми надішлемо окремо ✅\n\nХочете подати ще одну людину?"
	textBye   = "Готово 💛 Якщо захочете — просто натисніть «Подати заявку» ще раз."

	textBadName     = "Ой, схоже тут не англійською 🙈\nБудь ласка, введіть імʼя та прізвище англійською.\nПриклад: Ivan Petrenko"
	textBadDOB      = "Будь ласка, формат: 17.05.1994"
	textBadAddress  = "Будь ласка, адреса англійською 😊\nАбо натисніть «ДАЛІ»."
	textBadCity     = "Будь ласка, місто англійською. Приклад: Kyiv"
	textBadPhone    = "Телефон має бути тільки цифри у форматі 380931111111. Спробуйте ще раз 💛"
	textBadEmail    = "Здається, пошта написана з помилкою 🙈\nПриклад: name@example.com"
	textBadGuardian = "Будь ласка, імʼя опікуна англійською.\nПриклад: Olena Petrenko"
	textNeedPhoto   = "Потрібно саме фото 🙏 Надішліть портретне фото, будь ласка."

	textDuplicate = "Ой 🙈 Схоже, заявка з таким імʼям уже є в цей день.\nЯкщо це інша людина з таким самим імʼям — додайте, будь ласка, середню літеру або друге імʼя англійською.\nПриклад: Ivan P. Petrenko\n\nВведіть імʼя ще раз:"

	textUploadFailed = "Не вдалося зберегти фото 😔 Спробуйте надіслати його ще раз, будь ласка."
	textCommitFailed = "Не вдалося надіслати заявку 😔 Дані збережені — натисніть «Погоджуюсь» ще раз трохи пізніше."

	textApproved = "Привіт! 💛\n\nВаша заявка попередньо ПІДТВЕРДЖЕНА ✅\nДеталі по локації та часу ми надішлемо окремо трохи ближче до зйомки.\n\nДякуємо!"
	textRejected = "Привіт! 💛\n\nНа жаль, цього разу ми не можемо вас підтвердити ❌\nАле будемо раді бачити вас на наступних зйомках.\n\nДякуємо за заявку!"
)
