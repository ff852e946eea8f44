package cli

import "github.com/sqdnosita/telegramQuizBot/internal/quiz"

var seedUser = quiz.TelegramUser{
	ID:        123456789,
	Username:  "test_user",
	FirstName: "Test",
}

type sampleQuiz struct {
	title     string
	questions []quiz.DraftQuestion
}

var sampleQuizzes = []sampleQuiz{
	{
		title: "Python Основы",
		questions: []quiz.DraftQuestion{
			{
				Text:          "Какой тип данных используется для хранения целых чисел в Python?",
				Options:       []string{"int", "float", "str", "bool"},
				CorrectOption: 1,
			},
			{
				Text:          "Какая функция используется для вывода текста в консоль?",
				Options:       []string{"echo()", "print()", "console.log()", "write()"},
				CorrectOption: 2,
			},
			{
				Text:          "Какой оператор используется для проверки равенства в Python?",
				Options:       []string{"=", "==", "===", "eq"},
				CorrectOption: 2,
			},
			{
				Text:          "Как создать список в Python?",
				Options:       []string{"list = (1, 2, 3)", "list = {1, 2, 3}", "list = [1, 2, 3]", "list = <1, 2, 3>"},
				CorrectOption: 3,
			},
			{
				Text:          "Какой метод используется для добавления элемента в конец списка?",
				Options:       []string{"add()", "append()", "push()", "insert()"},
				CorrectOption: 2,
			},
		},
	},
	{
		title: "JavaScript Основы",
		questions: []quiz.DraftQuestion{
			{
				Text:          "Какое ключевое слово используется для объявления константы в JavaScript?",
				Options:       []string{"var", "let", "const", "final"},
				CorrectOption: 3,
			},
			{
				Text:          "Какой метод используется для преобразования строки в число?",
				Options:       []string{"parseInt()", "toNumber()", "convert()", "number()"},
				CorrectOption: 1,
			},
			{
				Text:          "Что вернет typeof null в JavaScript?",
				Options:       []string{"'null'", "'undefined'", "'object'", "'number'"},
				CorrectOption: 3,
			},
			{
				Text:          "Какой оператор используется для строгого сравнения в JavaScript?",
				Options:       []string{"==", "===", "=", "eq"},
				CorrectOption: 2,
			},
		},
	},
	{
		title: "SQL Запросы",
		questions: []quiz.DraftQuestion{
			{
				Text:          "Какая команда используется для выборки данных из таблицы?",
				Options:       []string{"GET", "SELECT", "FETCH", "RETRIEVE"},
				CorrectOption: 2,
			},
			{
				Text:          "Какое ключевое слово используется для фильтрации результатов?",
				Options:       []string{"FILTER", "WHERE", "HAVING", "IF"},
				CorrectOption: 2,
			},
			{
				Text:          "Какая команда используется для добавления новой записи в таблицу?",
				Options:       []string{"ADD", "INSERT", "CREATE", "APPEND"},
				CorrectOption: 2,
			},
			{
				Text:          "Какой оператор используется для объединения двух таблиц?",
				Options:       []string{"MERGE", "COMBINE", "JOIN", "UNION"},
				CorrectOption: 3,
			},
			{
				Text:          "Какая команда используется для удаления записей из таблицы?",
				Options:       []string{"REMOVE", "DELETE", "DROP", "CLEAR"},
				CorrectOption: 2,
			},
			{
				Text:          "Какое ключевое слово используется для сортировки результатов?",
				Options:       []string{"SORT", "ORDER BY", "ARRANGE", "RANK"},
				CorrectOption: 2,
			},
		},
	},
	{
		title: "HTML & CSS",
		questions: []quiz.DraftQuestion{
			{
				Text:          "Какой тег используется для создания заголовка первого уровня?",
				Options:       []string{"<header>", "<h1>", "<title>", "<head>"},
				CorrectOption: 2,
			},
			{
				Text:          "Какое свойство CSS используется для изменения цвета текста?",
				Options:       []string{"text-color", "color", "font-color", "fg-color"},
				CorrectOption: 2,
			},
			{
				Text:          "Какой тег используется для создания ссылки?",
				Options:       []string{"<link>", "<a>", "<href>", "<url>"},
				CorrectOption: 2,
			},
			{
				Text:          "Какое свойство CSS используется для изменения размера шрифта?",
				Options:       []string{"text-size", "font-size", "size", "text-height"},
				CorrectOption: 2,
			},
		},
	},
	{
		title: "Git Основы",
		questions: []quiz.DraftQuestion{
			{
				Text:          "Какая команда используется для клонирования репозитория?",
				Options:       []string{"git copy", "git clone", "git download", "git pull"},
				CorrectOption: 2,
			},
			{
				Text:          "Какая команда используется для создания коммита?",
				Options:       []string{"git save", "git commit", "git push", "git add"},
				CorrectOption: 2,
			},
			{
				Text:          "Какая команда показывает статус репозитория?",
				Options:       []string{"git info", "git status", "git state", "git check"},
				CorrectOption: 2,
			},
			{
				Text:          "Какая команда используется для отправки изменений на сервер?",
				Options:       []string{"git send", "git push", "git upload", "git commit"},
				CorrectOption: 2,
			},
		},
	},
	{
		title: "Docker Основы",
		questions: []quiz.DraftQuestion{
			{
				Text:          "Какая команда используется для запуска контейнера?",
				Options:       []string{"docker start", "docker run", "docker execute", "docker launch"},
				CorrectOption: 2,
			},
			{
				Text:          "Какая команда показывает список запущенных контейнеров?",
				Options:       []string{"docker list", "docker ps", "docker show", "docker ls"},
				CorrectOption: 2,
			},
			{
				Text:          "Какой файл используется для описания образа?",
				Options:       []string{"docker.yml", "Dockerfile", "docker.json", "image.txt"},
				CorrectOption: 2,
			},
			{
				Text:          "Какая команда используется для остановки контейнера?",
				Options:       []string{"docker end", "docker stop", "docker kill", "docker pause"},
				CorrectOption: 2,
			},
		},
	},
	{
		title: "REST API",
		questions: []quiz.DraftQuestion{
			{
				Text:          "Какой HTTP метод используется для получения данных?",
				Options:       []string{"POST", "GET", "PUT", "DELETE"},
				CorrectOption: 2,
			},
			{
				Text:          "Какой HTTP метод используется для создания нового ресурса?",
				Options:       []string{"GET", "POST", "PUT", "PATCH"},
				CorrectOption: 2,
			},
			{
				Text:          "Какой код статуса означает успешный запрос?",
				Options:       []string{"404", "200", "500", "301"},
				CorrectOption: 2,
			},
			{
				Text:          "Какой HTTP метод используется для обновления ресурса?",
				Options:       []string{"POST", "PUT", "GET", "DELETE"},
				CorrectOption: 2,
			},
		},
	},
	{
		title: "Алгоритмы",
		questions: []quiz.DraftQuestion{
			{
				Text:          "Какая сложность у бинарного поиска?",
				Options:       []string{"O(n)", "O(log n)", "O(n²)", "O(1)"},
				CorrectOption: 2,
			},
			{
				Text:          "Какая структура данных работает по принципу LIFO?",
				Options:       []string{"Очередь", "Стек", "Список", "Дерево"},
				CorrectOption: 2,
			},
			{
				Text:          "Какая структура данных работает по принципу FIFO?",
				Options:       []string{"Стек", "Очередь", "Массив", "Граф"},
				CorrectOption: 2,
			},
			{
				Text:          "Какая сложность у быстрой сортировки в среднем случае?",
				Options:       []string{"O(n)", "O(n log n)", "O(n²)", "O(log n)"},
				CorrectOption: 2,
			},
		},
	},
}
