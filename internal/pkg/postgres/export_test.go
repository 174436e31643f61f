package postgres

var NewDsn = newDsn
