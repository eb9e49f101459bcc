package cmd

import (
	"procurement/internal/core/domain/model/product"
)

// DefaultCatalog is the master product list seeded on first start. Existing
// rows are never overwritten, so manual catalog edits survive restarts.
func DefaultCatalog() []product.Product {
	return []product.Product{
		{ID: "1", Name: "Молоко (Sut)", Category: "🥛 Молочные продукты", Unit: product.UnitLiter},
		{ID: "2", Name: "Кефир (Kefir)", Category: "🥛 Молочные продукты", Unit: product.UnitLiter},
		{ID: "3", Name: "Творог (Tvorog / Suzma)", Category: "🥛 Молочные продукты", Unit: product.UnitKg},
		{ID: "4", Name: "Каймак (Qaymoq)", Category: "🥛 Молочные продукты", Unit: product.UnitKg},
		{ID: "5", Name: "Сметана (Smetana / Qaymoqcha)", Category: "🥛 Молочные продукты", Unit: product.UnitKg},
		{ID: "6", Name: "Сыр твёрдый (Qattiq pishloq)", Category: "🥛 Молочные продукты", Unit: product.UnitKg},
		{ID: "7", Name: "Сыр плавленый (Eritilgan pishloq)", Category: "🥛 Молочные продукты", Unit: product.UnitKg},
		{ID: "8", Name: "Сыр моцарелла (Motsarella pishlog‘i)", Category: "🥛 Молочные продукты", Unit: product.UnitKg},
		{ID: "9", Name: "Сыр Ханский (Xon pishlog‘i)", Category: "🥛 Молочные продукты", Unit: product.UnitKg},
		{ID: "10", Name: "Сырок (Shirin pishloqcha)", Category: "🥛 Молочные продукты", Unit: product.UnitPiece},
		{ID: "11", Name: "Сливочное масло (Sariyog‘)", Category: "🥛 Молочные продукты", Unit: product.UnitKg},
		{ID: "12", Name: "Маргарин «Шедрое лето» (Margarin)", Category: "🥛 Молочные продукты", Unit: product.UnitKg},
		{ID: "13", Name: "Яйца куриные (Tovuq tuxumi)", Category: "🥚 Яйца и мясо", Unit: product.UnitPiece},
		{ID: "14", Name: "Яйца перепелиные (Bedana tuxumi)", Category: "🥚 Яйца и мясо", Unit: product.UnitPiece},
		{ID: "15", Name: "Индейка (Kurka go‘shti)", Category: "🥚 Яйца и мясо", Unit: product.UnitKg},
		{ID: "16", Name: "Колбаса варёная (Qaynatilgan kolbasa)", Category: "🥚 Яйца и мясо", Unit: product.UnitKg},
		{ID: "17", Name: "Колбаса копчёная (Dudlangan kolbasa)", Category: "🥚 Яйца и мясо", Unit: product.UnitKg},
		{ID: "18", Name: "Сосиски (Sosiska)", Category: "🥚 Яйца и мясо", Unit: product.UnitKg},
		{ID: "19", Name: "Мука (Un)", Category: "🍞 Хлеб и мучное", Unit: product.UnitKg},
		{ID: "20", Name: "Лаваш (Lavash non)", Category: "🍞 Хлеб и мучное", Unit: product.UnitPiece},
		{ID: "21", Name: "Хлеб (Non)", Category: "🍞 Хлеб и мучное", Unit: product.UnitPiece},
		{ID: "22", Name: "Тостовый хлеб (Tost noni)", Category: "🍞 Хлеб и мучное", Unit: product.UnitPiece},
		{ID: "23", Name: "Манпар (тесто) (Xamir)", Category: "🍞 Хлеб и мучное", Unit: product.UnitKg},
		{ID: "24", Name: "Макароны (Makaron)", Category: "🍞 Хлеб и мучное", Unit: product.UnitKg},
		{ID: "25", Name: "Спагетти (Spagetti)", Category: "🍞 Хлеб и мучное", Unit: product.UnitKg},
		{ID: "26", Name: "Вермишель (Vermishel)", Category: "🍞 Хлеб и мучное", Unit: product.UnitKg},
		{ID: "27", Name: "Фунчоза (Funchuza)", Category: "🍞 Хлеб и мучное", Unit: product.UnitKg},
		{ID: "28", Name: "Манная крупа (Manka yormasi)", Category: "🍞 Хлеб и мучное", Unit: product.UnitKg},
		{ID: "29", Name: "Овсянка (Suli yormasi)", Category: "🍞 Хлеб и мучное", Unit: product.UnitKg},
		{ID: "30", Name: "Рис (Guruch)", Category: "🍚 Крупы и бобовые", Unit: product.UnitKg},
		{ID: "31", Name: "Рис обычный (Oddiy guruch)", Category: "🍚 Крупы и бобовые", Unit: product.UnitKg},
		{ID: "32", Name: "Рис Лазер (Lazer guruch)", Category: "🍚 Крупы и бобовые", Unit: product.UnitKg},
		{ID: "33", Name: "Перловка (Arpa yormasi)", Category: "🍚 Крупы и бобовые", Unit: product.UnitKg},
		{ID: "34", Name: "Нут / горох (No‘xat)", Category: "🍚 Крупы и бобовые", Unit: product.UnitKg},
		{ID: "35", Name: "Горох (консерва) (Konserva no‘xat)", Category: "🍚 Крупы и бобовые", Unit: product.UnitPiece},
		{ID: "36", Name: "Соль (Tuz)", Category: "🧂 Специи и приправы", Unit: product.UnitKg},
		{ID: "37", Name: "Корейская соль (Koreys tuzi)", Category: "🧂 Специи и приправы", Unit: product.UnitKg},
		{ID: "38", Name: "Зира (Zira)", Category: "🧂 Специи и приправы", Unit: product.UnitGram},
		{ID: "39", Name: "Приправа для лагмана (Lag‘mon ziravori)", Category: "🧂 Специи и приправы", Unit: product.UnitGram},
		{ID: "40", Name: "Лавровый лист (Dafna bargi)", Category: "🧂 Специи и приправы", Unit: product.UnitPiece},
		{ID: "41", Name: "Роллтон (приправа) (Rollton ziravori)", Category: "🧂 Специи и приправы", Unit: product.UnitPiece},
		{ID: "42", Name: "Кунжут (Kunjut)", Category: "🧂 Специи и приправы", Unit: product.UnitGram},
		{ID: "43", Name: "Какао (Kakao)", Category: "☕ Напитки и сладкое", Unit: product.UnitKg},
		{ID: "44", Name: "Чёрный чай (Qora choy)", Category: "☕ Напитки и сладкое", Unit: product.UnitKg},
		{ID: "45", Name: "Сахар (Shakar)", Category: "☕ Напитки и сладкое", Unit: product.UnitKg},
		{ID: "46", Name: "Варенье (Murabbo)", Category: "☕ Напитки и сладкое", Unit: product.UnitKg},
		{ID: "47", Name: "Шоколадная паста (Shokolad pastasi)", Category: "☕ Напитки и сладкое", Unit: product.UnitPiece},
		{ID: "48", Name: "Миллер (вафли) (Vafli)", Category: "☕ Напитки и сладкое", Unit: product.UnitPiece},
		{ID: "49", Name: "Изюм (Mayiz)", Category: "☕ Напитки и сладкое", Unit: product.UnitKg},
		{ID: "50", Name: "Грецкий орех (Yong‘oq)", Category: "☕ Напитки и сладкое", Unit: product.UnitKg},
		{ID: "51", Name: "Майонез (Mayonez)", Category: "🥫 Соусы и добавки", Unit: product.UnitKg},
		{ID: "52", Name: "Соевый соус (Soya sousi)", Category: "🥫 Соусы и добавки", Unit: product.UnitLiter},
		{ID: "53", Name: "Уксус (Sirka)", Category: "🥫 Соусы и добавки", Unit: product.UnitLiter},
		{ID: "54", Name: "Томатная паста (Tomat pastasi)", Category: "🥫 Соусы и добавки", Unit: product.UnitKg},
		{ID: "55", Name: "Кетчуп (Ketchup)", Category: "🥫 Соусы и добавки", Unit: product.UnitPiece},
		{ID: "56", Name: "Масло растительное (O‘simlik yog‘i)", Category: "🥫 Соусы и добавки", Unit: product.UnitLiter},
		{ID: "57", Name: "Сода (Soda)", Category: "🥫 Соусы и добавки", Unit: product.UnitPiece},
		{ID: "58", Name: "Дрожжи (Xamirturush)", Category: "🥫 Соусы и добавки", Unit: product.UnitPiece},
		{ID: "59", Name: "Разрыхлитель (Pishirish kukuni)", Category: "🥫 Соусы и добавки", Unit: product.UnitPiece},
		{ID: "60", Name: "Картофель (Kartoshka)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "61", Name: "Морковь красная (Qizil sabzi)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "62", Name: "Морковь жёлтая (Sariq sabzi)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "63", Name: "Капуста зелёная (Yashil karam)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "64", Name: "Капуста красная (Qizil karam)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "65", Name: "Капуста квашеная (Tuzlangan karam)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "66", Name: "Помидоры (Pomidor)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "67", Name: "Огурцы (Bodring)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "68", Name: "Солёные огурцы (Tuzlangan bodring)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "69", Name: "Болгарский перец (Bulgar qalampiri)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "70", Name: "Болгарский перец «Светофор» (Rangli qalampir)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "71", Name: "Лук (Piyoz)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "72", Name: "Сельдерей (Selderey)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "73", Name: "Корейская морковь (Koreyscha sabzi)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "74", Name: "Укроп (Shivit)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "75", Name: "Кинза (Kashnich)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "76", Name: "Свекла красная (Qizil lavlagi)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "77", Name: "Редька белая (Oq turup)", Category: "🥕 Овощи и зелень", Unit: product.UnitKg},
		{ID: "78", Name: "Бананы (Banan)", Category: "🍎 Фрукты", Unit: product.UnitKg},
		{ID: "79", Name: "Яблоки (Olma)", Category: "🍎 Фрукты", Unit: product.UnitKg},
		{ID: "80", Name: "Груша (Nok)", Category: "🍎 Фрукты", Unit: product.UnitKg},
		{ID: "81", Name: "Лимоны (Limon)", Category: "🍎 Фрукты", Unit: product.UnitKg},
	}
}
