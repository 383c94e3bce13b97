package statsview

// Address of the statistics server.
const Address = "localhost:12800"
