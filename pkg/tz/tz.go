package tz

import (
	"time"
	_ "time/tzdata"
)

// Seoul is the Asia/Seoul location (KST, no DST).
var Seoul *time.Location

func init() {
	var err error
	Seoul, err = time.LoadLocation("Asia/Seoul")
	if err != nil {
		panic("tz: load Asia/Seoul: " + err.Error())
	}
}
