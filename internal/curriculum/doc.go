// Package curriculum holds the Meixner letter-introduction order used for
// Hungarian reading practice and resolves the cumulative letter pools a
// learner has unlocked at a given level.
package curriculum
