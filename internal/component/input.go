package component

// Point: абсолютная позиция указателя в координатах игрового поля
type Point struct {
	X, Y float64
}

// Input: ввод за один кадр, уже снятый с клавиатуры и мыши.
type Input struct {
	Left, Right, Up, Down bool
	Fire                  bool   // Одиночный выстрел в этом кадре
	Pointer               *Point // Если задан, центр игрока ставится сюда
	Start                 bool   // Запуск или перезапуск сессии
}

// Playfield: размеры игрового поля
type Playfield struct {
	Width, Height float64
}
