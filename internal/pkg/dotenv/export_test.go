package dotenv

var ApplyFlags = applyFlags
