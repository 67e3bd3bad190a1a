package auth

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// passwordAlphabet - [0-9A-Za-z], алфавит сгенерированных паролей.
const passwordAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GeneratedPasswordLength - длина пароля, выдаваемого при сбросе.
const GeneratedPasswordLength = 20

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша.
// Поврежденный хеш дает false, наружу ошибка не выходит.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GeneratePassword возвращает случайный пароль из 20 символов [0-9A-Za-z].
// Источник случайности криптографический.
func GeneratePassword() (string, error) {
	result := make([]byte, GeneratedPasswordLength)
	alphabetLen := big.NewInt(int64(len(passwordAlphabet)))
	for i := range result {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		result[i] = passwordAlphabet[n.Int64()]
	}
	return string(result), nil
}
